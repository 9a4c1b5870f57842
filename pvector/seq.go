package pvector

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// The functions in this file are built only on Get, Add and ordered
// traversal, plus the bulk builder for results.

// Map returns a vector of fn applied to every element of v.
func Map[T, U any](v Vector[T], fn func(T) U) Vector[U] {
	b := NewBuilder[U](v.Len())
	for x := range v.Values() {
		b.Add(fn(x))
	}
	return fromOwned(b.items)
}

// Filter returns a vector of the elements of v for which keep is true, in
// their original order.
func Filter[T any](v Vector[T], keep func(T) bool) Vector[T] {
	b := NewBuilder[T](0)
	for x := range v.Values() {
		if keep(x) {
			b.Add(x)
		}
	}
	return fromOwned(b.items)
}

func Reduce[T, A any](v Vector[T], init A, fn func(A, T) A) A {
	acc := init
	for x := range v.Values() {
		acc = fn(acc, x)
	}
	return acc
}

// SortFunc returns a vector of the elements of v ordered by cmp. The sort is
// stable.
func SortFunc[T any](v Vector[T], cmp func(a, b T) int) Vector[T] {
	items := v.ToSlice()
	slices.SortStableFunc(items, cmp)
	return fromOwned(items)
}

// Reverse returns a vector of the elements of v in reverse order.
func Reverse[T any](v Vector[T]) Vector[T] {
	b := NewBuilder[T](v.Len())
	for _, x := range v.Backward() {
		b.Add(x)
	}
	return fromOwned(b.items)
}

// Slice returns the elements in [from, to) as a new vector.
func Slice[T any](v Vector[T], from, to int) (Vector[T], error) {
	if from < 0 || to < from || to > v.Len() {
		return Vector[T]{}, fmt.Errorf("%w: [%d:%d] of size %d", ErrSliceBounds, from, to, v.Len())
	}
	b := NewBuilder[T](to - from)
	for i := from; i < to; i++ {
		x, _ := v.Get(i)
		b.Add(x)
	}
	return fromOwned(b.items), nil
}

// IndexFunc returns the index of the first element satisfying fn, or -1.
func IndexFunc[T any](v Vector[T], fn func(T) bool) int {
	for i, x := range v.All() {
		if fn(x) {
			return i
		}
	}
	return -1
}

// Sample returns an element chosen uniformly at random using r. ok is false
// for the empty vector.
func Sample[T any](v Vector[T], r *rand.Rand) (T, bool) {
	if v.IsEmpty() {
		var zero T
		return zero, false
	}
	return v.Get(r.IntN(v.Len()))
}
