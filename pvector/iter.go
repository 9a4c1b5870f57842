package pvector

import "iter"

// All returns a forward iterator over index, element pairs. Each call starts
// a fresh walk; the vector itself holds no iteration state.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v.root == nil {
			return
		}
		i := 0
		walkForward(v.root, v.height, func(x T) bool {
			if !yield(i, x) {
				return false
			}
			i++
			return true
		})
	}
}

// Values returns a forward iterator over the elements.
func (v Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v.root == nil {
			return
		}
		walkForward(v.root, v.height, yield)
	}
}

// Backward returns an iterator over index, element pairs from the last
// element to the first.
func (v Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v.root == nil {
			return
		}
		i := v.size - 1
		walkBackward(v.root, v.height, func(x T) bool {
			if !yield(i, x) {
				return false
			}
			i--
			return true
		})
	}
}

// Each calls fn for every element in order until fn returns false.
func (v Vector[T]) Each(fn func(i int, x T) bool) {
	for i, x := range v.All() {
		if !fn(i, x) {
			return
		}
	}
}

// ToSlice returns the elements in index order in a newly allocated slice.
func (v Vector[T]) ToSlice() []T {
	out := make([]T, 0, v.size)
	if v.root == nil {
		return out
	}
	if v.height == 0 {
		return append(out, asLeaf(v.root).items...)
	}
	return appendLeaves(out, v.root, v.height)
}

// walkForward visits the elements under n depth first, left to right. level
// is the number of branch levels below and including n. It reports false if
// yield asked to stop.
func walkForward[T any](n node[T], level uint, yield func(T) bool) bool {
	if level == 0 {
		for _, x := range asLeaf(n).items {
			if !yield(x) {
				return false
			}
		}
		return true
	}
	for _, child := range asBranch(n).children {
		if !walkForward(child, level-1, yield) {
			return false
		}
	}
	return true
}

// walkBackward is the mirror of walkForward.
func walkBackward[T any](n node[T], level uint, yield func(T) bool) bool {
	if level == 0 {
		items := asLeaf(n).items
		for j := len(items) - 1; j >= 0; j-- {
			if !yield(items[j]) {
				return false
			}
		}
		return true
	}
	children := asBranch(n).children
	for j := len(children) - 1; j >= 0; j-- {
		if !walkBackward(children[j], level-1, yield) {
			return false
		}
	}
	return true
}

func appendLeaves[T any](out []T, n node[T], level uint) []T {
	if level == 0 {
		return append(out, asLeaf(n).items...)
	}
	for _, child := range asBranch(n).children {
		out = appendLeaves(out, child, level-1)
	}
	return out
}
