package pvector

import (
	"fmt"
	"strings"
)

// Vector is an immutable indexed sequence. Set and Add return new vectors;
// the receiver is never modified, so a Vector may be shared freely between
// goroutines.
//
// The zero value is the empty vector.
type Vector[T any] struct {
	size   int
	height uint
	root   node[T] // nil for the empty vector
}

// Empty returns the empty vector.
func Empty[T any]() Vector[T] {
	return Vector[T]{}
}

// New returns a vector holding items in order.
func New[T any](items ...T) Vector[T] {
	return FromSlice(items)
}

// Len returns the number of elements.
func (v Vector[T]) Len() int {
	return v.size
}

func (v Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Height returns the number of branch levels above the leaves. It is 0 for
// vectors of up to 32 elements.
func (v Vector[T]) Height() int {
	return int(v.height)
}

// Get returns the element at index i. Negative indices count back from the
// end, so Get(-1) is the last element. ok is false when i does not address
// an element.
func (v Vector[T]) Get(i int) (T, bool) {
	i, ok := v.normalize(i)
	if !ok {
		var zero T
		return zero, false
	}
	return v.leafFor(i).items[i&BranchMask], true
}

func (v Vector[T]) First() (T, bool) {
	return v.Get(0)
}

func (v Vector[T]) Last() (T, bool) {
	return v.Get(-1)
}

// Fetch is Get with an explicit policy for misses. Without options a miss is
// an error wrapping ErrIndexOutOfRange. WithDefault and WithFallback turn a
// miss into a value instead.
func (v Vector[T]) Fetch(i int, opts ...FetchOption[T]) (T, error) {
	if x, ok := v.Get(i); ok {
		return x, nil
	}

	var options FetchOptions[T]
	for _, o := range opts {
		o(&options)
	}
	switch {
	case options.fallback != nil:
		return options.fallback(i), nil
	case options.hasDefault:
		return options.defaultValue, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, v.size)
}

// String formats the elements as [a, b, c].
func (v Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(']')
	return sb.String()
}
