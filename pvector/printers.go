package pvector

import (
	"fmt"
	"io"
	"strings"
)

// debug utilities

// Dump writes an indented outline of the tree, one node per line. Branches
// show the index range they cover; leaves also show their elements.
func (v Vector[T]) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "size=%d height=%d\n", v.size, v.height); err != nil {
		return err
	}
	if v.root == nil {
		return nil
	}
	return dumpNode(w, v.root, v.height, 0, 0)
}

func dumpNode[T any](w io.Writer, n node[T], level uint, depth int, first int) error {
	indent := strings.Repeat("  ", depth)
	last := first + subtreeSize(n, level) - 1

	if level == 0 {
		_, err := fmt.Fprintf(w, "%sleaf [%d..%d] %v\n", indent, first, last, asLeaf(n).items)
		return err
	}

	children := asBranch(n).children
	if _, err := fmt.Fprintf(w, "%sbranch [%d..%d] slots=%d\n", indent, first, last, len(children)); err != nil {
		return err
	}
	span := Capacity(level - 1)
	for j, child := range children {
		if err := dumpNode(w, child, level-1, depth+1, first+j*span); err != nil {
			return err
		}
	}
	return nil
}

// subtreeSize counts the elements under n. Only the right most child can be
// partial, so this follows a single path.
func subtreeSize[T any](n node[T], level uint) int {
	if level == 0 {
		return asLeaf(n).slotCount()
	}
	children := asBranch(n).children
	full := (len(children) - 1) * Capacity(level-1)
	return full + subtreeSize(children[len(children)-1], level-1)
}
