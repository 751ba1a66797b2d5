package hierarchy

import "errors"

// ErrHeapConsistency indicates a popped priority-queue entry's recorded
// weight no longer matches the referenced edge's current weight — a
// programmer assertion failure in the build loop, never expected from
// well-formed input.
var ErrHeapConsistency = errors.New("hierarchy: popped edge weight disagrees with its current weight")

// Tree is the binary partition tree built over a region graph: for
// every node index i (leaves first, then merge nodes in birth order),
// Parents[i] is the index of i's parent merge node (i itself if i is a
// root), and Levels[i] is the apparition scale at which i was born
// (zero for leaves). Invariant: for every non-root i, Parents[i] > i.
type Tree struct {
	Parents   []int
	Levels    []float64
	NumLeaves int
}

// IsRoot reports whether node i has no parent merge (it is its own
// parent).
func (t *Tree) IsRoot(i int) bool {
	return t.Parents[i] == i
}
