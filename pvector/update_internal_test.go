package pvector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestFromSliceShape(t *testing.T) {
	v := FromSlice(sequence(70))
	require.Equal(t, uint(1), v.height)

	root := asBranch(v.root)
	require.Len(t, root.children, 3)
	require.Len(t, asLeaf(root.children[0]).items, 32)
	require.Len(t, asLeaf(root.children[1]).items, 32)
	require.Len(t, asLeaf(root.children[2]).items, 6)

	// leaves are capped so nothing can grow into a neighbour
	require.Equal(t, 32, cap(asLeaf(root.children[0]).items))
}

func TestFromSliceHeightMatchesGrowth(t *testing.T) {
	for _, n := range []int{1, 31, 32, 33, 1023, 1024, 1025, 2048, 40000} {
		v := FromSlice(sequence(n))
		require.Equal(t, HeightForSize(n), v.height, "n=%d", n)
	}
}

func TestEmptyHasNoRoot(t *testing.T) {
	var v Vector[int]
	require.Nil(t, v.root)
	require.Equal(t, Empty[int](), v)

	v1 := v.Add(1)
	require.Equal(t, uint(0), v1.height)
	require.Equal(t, []int{1}, asLeaf(v1.root).items)
	require.Nil(t, v.root)
}

func TestSetCopiesOnlyThePath(t *testing.T) {
	v := FromSlice(sequence(1000))
	require.Equal(t, uint(1), v.height)

	v2, err := v.Set(37, -1)
	require.NoError(t, err)

	old := asBranch(v.root)
	upd := asBranch(v2.root)
	require.NotSame(t, old, upd)
	require.Len(t, upd.children, len(old.children))

	for j := range old.children {
		if j == SlotAt(37, 1) {
			require.NotSame(t, asLeaf(old.children[j]), asLeaf(upd.children[j]))
			continue
		}
		require.Same(t, asLeaf(old.children[j]), asLeaf(upd.children[j]), "slot %d", j)
	}

	// the old leaf is untouched
	require.Equal(t, 37, asLeaf(old.children[1]).items[5])
	require.Equal(t, -1, asLeaf(upd.children[1]).items[5])
}

func TestSetCopiesOnlyThePathHeightTwo(t *testing.T) {
	v := FromSlice(sequence(5000))
	require.Equal(t, uint(2), v.height)

	i := 3000
	v2, err := v.Set(i, -1)
	require.NoError(t, err)

	oldRoot, newRoot := asBranch(v.root), asBranch(v2.root)
	s2 := SlotAt(i, 2)
	for j := range oldRoot.children {
		if j != s2 {
			require.Same(t, asBranch(oldRoot.children[j]), asBranch(newRoot.children[j]))
		}
	}

	oldMid, newMid := asBranch(oldRoot.children[s2]), asBranch(newRoot.children[s2])
	require.NotSame(t, oldMid, newMid)
	s1 := SlotAt(i, 1)
	for j := range oldMid.children {
		if j != s1 {
			require.Same(t, asLeaf(oldMid.children[j]), asLeaf(newMid.children[j]))
		}
	}
	require.NotSame(t, asLeaf(oldMid.children[s1]), asLeaf(newMid.children[s1]))
}

func TestAddGrowsRootAroundOldRoot(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		wantHeight uint
	}{
		{"33rd element", 32, 1},
		{"1025th element", 1024, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromSlice(sequence(tt.size))
			v2 := v.Add(tt.size)

			require.Equal(t, tt.wantHeight-1, v.height)
			require.Equal(t, tt.wantHeight, v2.height)
			require.Equal(t, tt.size+1, v2.size)

			root := asBranch(v2.root)
			require.Len(t, root.children, 2)
			require.True(t, root.children[0] == v.root, "old root must be reused as the left child")

			got, ok := v2.Get(tt.size)
			require.True(t, ok)
			require.Equal(t, tt.size, got)
		})
	}
}

func TestAddCreatesMissingPath(t *testing.T) {
	// 1056 = 1024 + 32: the right most level 1 branch holds one full leaf,
	// so the next append has to create a leaf beside it.
	v := FromSlice(sequence(1056))
	require.Equal(t, uint(2), v.height)
	require.Len(t, asBranch(asBranch(v.root).children[1]).children, 1)

	v2 := v.Add(1056)
	mid := asBranch(asBranch(v2.root).children[1])
	require.Len(t, mid.children, 2)
	require.Equal(t, []int{1056}, asLeaf(mid.children[1]).items)
	require.Same(t, asLeaf(asBranch(asBranch(v.root).children[1]).children[0]), asLeaf(mid.children[0]))
}
