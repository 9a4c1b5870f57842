package pvector

import (
	"iter"
	"slices"
)

// FromSlice returns a vector holding a copy of items.
func FromSlice[T any](items []T) Vector[T] {
	return fromOwned(slices.Clone(items))
}

// Collect returns a vector holding the values of seq in order.
func Collect[T any](seq iter.Seq[T]) Vector[T] {
	return fromOwned(slices.Collect(seq))
}

// fromOwned bulk builds a vector over items without copying them. The caller
// must not retain items. Leaves are cut from items with a capped length so no
// later append can reach into a neighbouring leaf.
func fromOwned[T any](items []T) Vector[T] {
	if len(items) == 0 {
		return Vector[T]{}
	}

	level := make([]node[T], 0, (len(items)+BranchMask)/BranchFactor)
	for start := 0; start < len(items); start += BranchFactor {
		end := min(start+BranchFactor, len(items))
		level = append(level, &leaf[T]{items: items[start:end:end]})
	}

	// Group each level into parents of up to 32 children until one root
	// remains. The number of passes is the height.
	var height uint
	for len(level) > 1 {
		parents := make([]node[T], 0, (len(level)+BranchMask)/BranchFactor)
		for start := 0; start < len(level); start += BranchFactor {
			end := min(start+BranchFactor, len(level))
			parents = append(parents, &branch[T]{children: level[start:end:end]})
		}
		level = parents
		height++
	}

	return Vector[T]{size: len(items), height: height, root: level[0]}
}

// Builder accumulates elements for a single bulk build. It is cheaper than
// repeated Add when the final contents are known up front. A Builder is not
// safe for concurrent use.
type Builder[T any] struct {
	items []T
}

func NewBuilder[T any](sizeHint int) *Builder[T] {
	return &Builder[T]{items: make([]T, 0, sizeHint)}
}

func (b *Builder[T]) Add(x T) *Builder[T] {
	b.items = append(b.items, x)
	return b
}

func (b *Builder[T]) AddAll(seq iter.Seq[T]) *Builder[T] {
	for x := range seq {
		b.items = append(b.items, x)
	}
	return b
}

func (b *Builder[T]) Len() int {
	return len(b.items)
}

// Build returns a vector of everything added so far. The builder can keep
// being used; later additions do not affect vectors already built.
func (b *Builder[T]) Build() Vector[T] {
	return FromSlice(b.items)
}
