package pvector

// node is either a *leaf or a *branch. Which one is determined by the level
// the node is found at: level 0 is always a leaf, every level above is a
// branch. Nodes are never written after they are reachable from a Vector.
type node[T any] interface {
	slotCount() int
}

type leaf[T any] struct {
	items []T
}

type branch[T any] struct {
	children []node[T]
}

func (l *leaf[T]) slotCount() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

func (b *branch[T]) slotCount() int {
	if b == nil {
		return 0
	}
	return len(b.children)
}

// with returns a copy of the leaf with slot set to x. slot may be one past
// the last populated slot, in which case the copy is one element longer. A
// nil receiver is treated as an empty leaf.
func (l *leaf[T]) with(slot int, x T) *leaf[T] {
	var items []T
	if l != nil {
		items = l.items
	}
	n := len(items)
	if slot >= n {
		n = slot + 1
	}
	cpy := make([]T, n)
	copy(cpy, items)
	cpy[slot] = x
	return &leaf[T]{items: cpy}
}

// with returns a copy of the branch with slot replaced by child, extending
// the copy by one slot when slot is one past the end. A nil receiver is
// treated as an empty branch.
func (b *branch[T]) with(slot int, child node[T]) *branch[T] {
	var children []node[T]
	if b != nil {
		children = b.children
	}
	n := len(children)
	if slot >= n {
		n = slot + 1
	}
	cpy := make([]node[T], n)
	copy(cpy, children)
	cpy[slot] = child
	return &branch[T]{children: cpy}
}

// asLeaf and asBranch panic if the tree shape invariant is broken. That can
// only happen through a bug in this package.
func asLeaf[T any](n node[T]) *leaf[T] {
	return n.(*leaf[T])
}

func asBranch[T any](n node[T]) *branch[T] {
	return n.(*branch[T])
}
