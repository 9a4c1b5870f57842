package pvector

import "math/bits"

const (
	// BranchBits is the number of index bits consumed at each level.
	BranchBits = 5
	// BranchFactor is the maximum number of slots in any node.
	BranchFactor = 1 << BranchBits
	// BranchMask selects the slot digit of an index at a single level.
	BranchMask = BranchFactor - 1

	// maxHeight is the largest height whose capacity is representable as a
	// non negative int.
	maxHeight = (bits.UintSize-1)/BranchBits - 1
)

// Capacity returns the number of elements a tree of the given height can
// hold, 32^(height+1). Heights beyond what an int can count saturate.
func Capacity(height uint) int {
	if height > maxHeight {
		return int(^uint(0) >> 1)
	}
	return 1 << ((height + 1) * BranchBits)
}

// HeightForSize returns the smallest height whose capacity covers size.
func HeightForSize(size int) uint {
	if size <= BranchFactor {
		return 0
	}
	// bits.Len of the largest index, rounded up to whole digits
	digits := (bits.Len(uint(size-1)) + BranchBits - 1) / BranchBits
	return uint(digits - 1)
}

// SlotAt returns the child slot for index i at a node that has remaining
// levels below it. remaining is 0 for the leaf itself.
func SlotAt(i int, remaining uint) int {
	return (i >> (remaining * BranchBits)) & BranchMask
}
