package pvector

import "iter"

// Equal reports whether a and b hold the same elements in the same order.
// The result does not depend on how either vector was built. Vectors sharing
// a root are equal without comparing elements, so a NaN held by both compares
// equal to itself here.
func Equal[T comparable](a, b Vector[T]) bool {
	// Same root and size means the same elements, whatever the history.
	if a.size == b.size && a.root == b.root {
		return true
	}
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller supplied element comparison. Every pair of
// elements is passed to eq, even when a and b are the same version.
func EqualFunc[T any](a, b Vector[T], eq func(x, y T) bool) bool {
	if a.size != b.size {
		return false
	}

	next, stop := iter.Pull(b.Values())
	defer stop()
	for x := range a.Values() {
		y, _ := next()
		if !eq(x, y) {
			return false
		}
	}
	return true
}

// EqualSlice reports whether v holds exactly the elements of s.
func EqualSlice[T comparable](v Vector[T], s []T) bool {
	if v.size != len(s) {
		return false
	}
	for i, x := range v.All() {
		if x != s[i] {
			return false
		}
	}
	return true
}
