package pvector

// PathSlots returns the slot taken at each level when resolving index i in a
// tree of the given height. The first entry is the slot in the root and the
// last is the slot in the leaf, so the result always has height+1 entries.
//
// The caller is responsible for i being in range for the height.
func PathSlots(i int, height uint) []int {
	path := make([]int, 0, height+1)
	for remaining := int(height); remaining >= 0; remaining-- {
		path = append(path, SlotAt(i, uint(remaining)))
	}
	return path
}

// normalize maps a possibly negative index onto [0, size). The second result
// reports whether the normalized index addresses an element.
func (v Vector[T]) normalize(i int) (int, bool) {
	if i < 0 {
		i += v.size
	}
	return i, i >= 0 && i < v.size
}

// leafFor descends from the root to the leaf holding index i. i must be in
// [0, size).
func (v Vector[T]) leafFor(i int) *leaf[T] {
	n := v.root
	for remaining := v.height; remaining > 0; remaining-- {
		n = asBranch(n).children[SlotAt(i, remaining)]
	}
	return asLeaf(n)
}
