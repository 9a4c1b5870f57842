package pvector

/*

# Persistent vectors

A Vector is an immutable, indexed sequence. Every "mutating" operation (Set,
Add) returns a new Vector and leaves the receiver exactly as it was. Old and
new versions share every part of their storage that the operation did not
touch, so a version costs O(log32 n) new nodes rather than a full copy.

All of this falls out of one simple property: the tree only grows to the
right. Nothing is ever inserted in the middle and nothing is ever removed, so
the tree is always "left dense" and the position of every element is a pure
function of its index. No node needs to record its own size or its parent.

## Shape

The tree is a 32 way trie. Internal nodes (branches) hold up to 32 children,
leaves hold up to 32 elements. With height h there are h levels of branches
above the leaves and the vector can hold 32^(h+1) elements.

	height 1, size 70

	            [ b0 ]
	         /    |    \
	        /     |     \
	  [0..31] [32..63] [64..69]

The index is read as a sequence of 5 bit digits, most significant first. For
the example above, index 37 is 0b00001_00101: the branch digit is 1 and the
leaf slot is 5.

	  i >> (remaining*5) & 31    at a branch with `remaining` levels below it
	  i & 31                     at the leaf

So resolution is height+1 shifts and masks, independent of the size of the
vector.

## Path copying

Set(i, x) clones only the nodes on the path from the root to the leaf holding
i. Each clone copies its slot slice and replaces the one slot on the path.
Every node off the path is referenced, by the same pointer, from both the old
and the new root.

	before            after Set(37, x)

	   r                 r'
	 / | \             / | \
	a  b  c           a  b' c

Add is Set at index Len(). When the vector is full for its height, the root
is first wrapped as the sole child of a new root (the height grows by one);
then the path is copied as for Set, creating the missing branches and the
leaf on the way down.

## Ownership

Nodes are shared between versions through ordinary pointers. A node is
reclaimed by the garbage collector once no reachable root leads to it. There
are no back references, and since nothing reachable from a published root is
ever written again, any number of goroutines may read any number of versions
without synchronisation.

## Equality

Equal and EqualFunc compare the logical sequences. Two vectors that hold the
same elements are equal regardless of how they were built (bulk built, grown
by Add, or rewritten by Set). Identical roots are only used as a fast path.

*/
