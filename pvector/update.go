package pvector

import "fmt"

// Set returns a vector with index i holding x. Negative indices count back
// from the end. Setting index Len() appends. Any other index outside the
// vector is an error wrapping ErrIndexOutOfRange; the vector is never
// extended with gaps.
func (v Vector[T]) Set(i int, x T) (Vector[T], error) {
	j := i
	if j < 0 {
		j += v.size
	}
	if j < 0 || j > v.size {
		return v, fmt.Errorf("%w: set index %d, size %d", ErrIndexOutOfRange, i, v.size)
	}
	return v.assoc(j, x), nil
}

// Add returns a vector with x appended.
func (v Vector[T]) Add(x T) Vector[T] {
	return v.assoc(v.size, x)
}

// Append returns a vector with xs appended in order.
func (v Vector[T]) Append(xs ...T) Vector[T] {
	for _, x := range xs {
		v = v.assoc(v.size, x)
	}
	return v
}

// Update replaces the element at i with fn applied to it. Unlike Set, i must
// address an existing element.
func (v Vector[T]) Update(i int, fn func(T) T) (Vector[T], error) {
	j, ok := v.normalize(i)
	if !ok {
		return v, fmt.Errorf("%w: update index %d, size %d", ErrIndexOutOfRange, i, v.size)
	}
	return v.assoc(j, fn(v.leafFor(j).items[j&BranchMask])), nil
}

// assoc is the path copying update shared by Set and Add. i must be in
// [0, size].
func (v Vector[T]) assoc(i int, x T) Vector[T] {
	root, height := v.root, v.height

	// Growth only ever happens when appending at a full capacity boundary.
	// The old root is kept, by reference, as the left most child.
	for i >= Capacity(height) {
		root = &branch[T]{children: []node[T]{root}}
		height++
	}

	size := v.size
	if i >= size {
		size = i + 1
	}
	return Vector[T]{
		size:   size,
		height: height,
		root:   assocPath(root, height, i, x),
	}
}

// assocPath rebuilds the nodes from n down to the leaf holding i and returns
// the copy of n. n may be nil when the path does not exist yet, which only
// happens on append.
func assocPath[T any](n node[T], remaining uint, i int, x T) node[T] {
	if remaining == 0 {
		l, _ := n.(*leaf[T])
		return l.with(i&BranchMask, x)
	}

	b, _ := n.(*branch[T])
	slot := SlotAt(i, remaining)
	var child node[T]
	if slot < b.slotCount() {
		child = b.children[slot]
	}
	return b.with(slot, assocPath(child, remaining-1, i, x))
}
