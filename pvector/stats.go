package pvector

// Stats describes the shape of a vector's tree.
type Stats struct {
	Size     int
	Height   int
	Leaves   int
	Branches int
}

// Nodes is the total number of allocated nodes.
func (s Stats) Nodes() int { return s.Leaves + s.Branches }

func (v Vector[T]) Stats() Stats {
	s := Stats{Size: v.size, Height: int(v.height)}
	visitNodes(v.root, v.height, func(_ node[T], level uint) {
		if level == 0 {
			s.Leaves++
			return
		}
		s.Branches++
	})
	return s
}

// SharingStats reports how much of one version's tree is reused from
// another.
type SharingStats struct {
	// Nodes is the node count of the newer version.
	Nodes int
	// Shared is how many of those nodes are the very same allocation in the
	// older version.
	Shared int
}

// Fresh is the number of nodes allocated for the newer version.
func (s SharingStats) Fresh() int { return s.Nodes - s.Shared }

// Sharing compares the trees of from and to. After to = from.Set(i, x),
// Fresh() is exactly the height of to plus one: the copied path.
func Sharing[T any](from, to Vector[T]) SharingStats {
	seen := make(map[node[T]]struct{})
	visitNodes(from.root, from.height, func(n node[T], _ uint) {
		seen[n] = struct{}{}
	})

	var s SharingStats
	visitNodes(to.root, to.height, func(n node[T], _ uint) {
		s.Nodes++
		if _, ok := seen[n]; ok {
			s.Shared++
		}
	})
	return s
}

// visitNodes calls fn for n and every node below it, parents before
// children.
func visitNodes[T any](n node[T], level uint, fn func(n node[T], level uint)) {
	if n == nil {
		return
	}
	fn(n, level)
	if level == 0 {
		return
	}
	for _, child := range asBranch(n).children {
		visitNodes(child, level-1, fn)
	}
}
