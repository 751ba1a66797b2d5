package hierarchy

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/IGNF/hierarchy-labellisation/plef"
	"github.com/IGNF/hierarchy-labellisation/region"
)

// BuildOptions configures the binary partition tree builder.
type BuildOptions struct {
	MaxPieces int
}

// BuildOption is a functional option for BuildOptions.
type BuildOption func(*BuildOptions)

// DefaultBuildOptions returns MaxPieces=plef.DefaultMaxPieces.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{MaxPieces: plef.DefaultMaxPieces}
}

// WithMaxPieces bounds the number of pieces kept by each plef.Sum call
// during tree construction.
func WithMaxPieces(n int) BuildOption {
	return func(o *BuildOptions) { o.MaxPieces = n }
}

// Build runs the binary partition tree builder over g, mutating g in
// place — edges are deactivated as they are consumed and new merge-node
// edges are appended — and returns the resulting Tree. ctx is checked
// once per iteration of the merge loop for cooperative cancellation; a
// cancelled build returns the tree as of the last complete merge
// alongside ctx.Err().
func Build(ctx context.Context, g *region.Graph, opts ...BuildOption) (*Tree, error) {
	cfg := DefaultBuildOptions()
	for _, o := range opts {
		o(&cfg)
	}

	n := g.NodeCount()
	tree := &Tree{
		Parents:   make([]int, n),
		Levels:    make([]float64, n),
		NumLeaves: n,
	}
	for i := 0; i < n; i++ {
		tree.Parents[i] = i
	}

	pq := make(edgePQ, 0, g.EdgeCount())
	for i, e := range g.Edges() {
		if !e.Active {
			continue
		}
		pq = append(pq, &edgeItem{edgeID: i, weight: e.Weight})
	}
	heap.Init(&pq)

	for pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return tree, err
		}

		item := heap.Pop(&pq).(*edgeItem)
		edge, err := g.Edge(item.edgeID)
		if err != nil {
			return tree, err
		}
		if !edge.Active {
			// Stale entry from an edge a previous merge already deactivated.
			continue
		}
		if edge.Weight != item.weight {
			return tree, fmt.Errorf("%w: edge %d weight %g, heap entry %g", ErrHeapConsistency, item.edgeID, edge.Weight, item.weight)
		}

		a, b := edge.U, edge.V
		if err := g.Deactivate(item.edgeID); err != nil {
			return tree, err
		}

		neighborEdges := gatherNeighbors(g, a, b)

		nodeA, err := g.Node(a)
		if err != nil {
			return tree, err
		}
		nodeB, err := g.Node(b)
		if err != nil {
			return tree, err
		}
		area, perimeter, values, valuesSq := region.MergedStats(nodeA, nodeB, edge.Length)

		merged := region.Node{
			Area:          area,
			Perimeter:     perimeter,
			Values:        values,
			ValuesSq:      valuesSq,
			OptimalEnergy: edge.MergedEnergy, // already computed when the edge's weight was assigned
		}
		mIdx := g.AddNode(merged)

		tree.Parents = append(tree.Parents, mIdx)
		tree.Levels = append(tree.Levels, edge.Weight)
		tree.Parents[a] = mIdx
		tree.Parents[b] = mIdx

		if err := rewireNeighbors(g, &pq, mIdx, merged, neighborEdges, cfg.MaxPieces, edge.Weight); err != nil {
			return tree, err
		}
	}

	return tree, nil
}

// gatherNeighbors builds the mapping from each distinct neighbor n ≠
// a,b adjacent to a or b via an active edge, to the list of active
// edges connecting {a,b} to n.
func gatherNeighbors(g *region.Graph, a, b int) map[int][]int {
	out := make(map[int][]int)
	for neighbor, eids := range g.ActiveNeighbors(a) {
		if neighbor == b {
			continue
		}
		out[neighbor] = append(out[neighbor], eids...)
	}
	for neighbor, eids := range g.ActiveNeighbors(b) {
		if neighbor == a {
			continue
		}
		out[neighbor] = append(out[neighbor], eids...)
	}
	return out
}

// rewireNeighbors deactivates every edge connecting the merged node's
// former endpoints to each shared neighbor, replacing them with a
// single new active edge carrying the summed length and a freshly
// computed apparition scale, pushed into the queue. birthLevel is the
// scale at which mIdx itself was born; a neighbor's computed scale is
// clamped up to birthLevel so tree.Levels stays non-decreasing along
// every root path even if PLEF truncation (maxPieces) would otherwise
// let a merge appear optimal at a scale below its own constituents'.
func rewireNeighbors(g *region.Graph, pq *edgePQ, mIdx int, merged region.Node, neighborEdges map[int][]int, maxPieces int, birthLevel float64) error {
	for neighbor, eids := range neighborEdges {
		var length uint32
		for _, eid := range eids {
			e, err := g.Edge(eid)
			if err != nil {
				return err
			}
			length += e.Length
			if err := g.Deactivate(eid); err != nil {
				return err
			}
		}

		neighborNode, err := g.Node(neighbor)
		if err != nil {
			return err
		}
		newMerged, scale := region.ApparitionScale(merged, neighborNode, length, maxPieces)
		if scale < birthLevel {
			scale = birthLevel
		}

		newEdgeID := g.AddEdge(mIdx, neighbor, length, scale)
		if err := g.SetApparitionScale(newEdgeID, scale, newMerged); err != nil {
			return err
		}
		heap.Push(pq, &edgeItem{edgeID: newEdgeID, weight: scale})
	}
	return nil
}
