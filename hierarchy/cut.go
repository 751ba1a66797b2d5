package hierarchy

import "errors"

// ErrLeafOutOfRange indicates a label map references a leaf index
// outside [0, tree.NumLeaves).
var ErrLeafOutOfRange = errors.New("hierarchy: label references a leaf index outside the tree")

// Cut flattens tree at scale λ: each leaf climbs to its topmost ancestor
// whose birth level is still below λ, and the initial label map is
// remapped through that ancestor assignment. Output labels are the
// ancestor's node index and are not necessarily contiguous — callers
// may re-densify.
//
// Climbing is a union-find "find" with path compression: instead of a
// fixed root predicate, the walk stops at the first ancestor whose
// parent was born at or after λ.
func Cut(tree *Tree, labels []uint32, lambda float64) ([]uint32, error) {
	cache := make([]int, len(tree.Parents))
	for i := range cache {
		cache[i] = -1
	}

	out := make([]uint32, len(labels))
	for idx, l := range labels {
		leaf := int(l)
		if leaf < 0 || leaf >= tree.NumLeaves {
			return nil, ErrLeafOutOfRange
		}
		out[idx] = uint32(find(tree, cache, leaf, lambda))
	}
	return out, nil
}

// find walks from i toward the root, stopping as soon as the next
// parent's birth level is no longer below lambda, and compresses every
// visited node's cache entry to the stopping point.
func find(tree *Tree, cache []int, i int, lambda float64) int {
	var path []int
	cur := i
	for {
		if cache[cur] != -1 {
			cur = cache[cur]
			break
		}
		p := tree.Parents[cur]
		if p == cur || tree.Levels[p] >= lambda {
			break
		}
		path = append(path, cur)
		cur = p
	}

	for _, node := range path {
		cache[node] = cur
	}
	return cur
}
