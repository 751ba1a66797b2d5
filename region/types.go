package region

import (
	"errors"

	"github.com/IGNF/hierarchy-labellisation/plef"
)

// Sentinel errors for region graph operations.
var (
	// ErrEmptyLabels indicates GraphFromLabels was given a label map with
	// no pixels.
	ErrEmptyLabels = errors.New("region: label map is empty")
	// ErrShapeMismatch indicates the image and label map dimensions disagree.
	ErrShapeMismatch = errors.New("region: image and label map dimensions disagree")
	// ErrNodeNotFound indicates a node index outside [0, NodeCount).
	ErrNodeNotFound = errors.New("region: node index out of range")
	// ErrEdgeNotFound indicates an edge index outside [0, EdgeCount).
	ErrEdgeNotFound = errors.New("region: edge index out of range")
)

// Node is one region of the adjacency graph: either an initial
// superpixel or (once owned by package hierarchy) a merged region.
// Area/Perimeter/Values/ValuesSq are running sums over the image's
// channel count; OptimalEnergy is the concave energy function giving
// the best achievable recursive-partition energy at any scale.
type Node struct {
	Area          uint32
	Perimeter     uint32
	Values        []uint64
	ValuesSq      []uint64
	OptimalEnergy plef.Plef
}

// newNode allocates a zeroed Node for the given channel count.
func newNode(channels int) Node {
	return Node{
		Values:   make([]uint64, channels),
		ValuesSq: make([]uint64, channels),
	}
}

// Edge connects two regions that share at least one pixel border.
// Active is a tombstone flag: merged-away edges are marked inactive
// rather than removed, so indices already referenced by a live
// priority-queue entry (package hierarchy) stay valid. Weight is the
// edge's apparition scale and MergedEnergy is the PLEF that scale was
// computed against — caching it here means the eventual merge (package
// hierarchy) reuses it as the new node's OptimalEnergy instead of
// recomputing the same plef.Sum/Infimum a second time.
type Edge struct {
	U, V         int
	Length       uint32
	Weight       float64
	MergedEnergy plef.Plef
	Active       bool
}

// Graph is the region adjacency graph: an append-only array of nodes
// plus an append-only array of edges, with adjacency lists mapping each
// node to the indices of its incident edges. It is not safe for
// concurrent use — ownership is single-call-site, matching the rest of
// this module's cooperative, single-threaded execution model.
type Graph struct {
	Channels int
	nodes    []Node
	edges    []Edge
	adj      [][]int // adj[n] = indices into edges incident to node n
}

// NewGraph allocates an empty Graph for images with the given channel
// count.
func NewGraph(channels int) *Graph {
	return &Graph{Channels: channels}
}

// NodeCount returns the number of nodes (including merged-away ones;
// they remain addressable, just no longer incident to any active edge).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges ever created (active or not).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns a copy of the node at index i.
func (g *Graph) Node(i int) (Node, error) {
	if i < 0 || i >= len(g.nodes) {
		return Node{}, ErrNodeNotFound
	}
	return g.nodes[i], nil
}

// Edge returns a copy of the edge at index i.
func (g *Graph) Edge(i int) (Edge, error) {
	if i < 0 || i >= len(g.edges) {
		return Edge{}, ErrEdgeNotFound
	}
	return g.edges[i], nil
}

// Edges returns a defensive copy of every edge ever created, active or
// not, indexed by edge index.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// AddNode appends a new node and returns its index.
func (g *Graph) AddNode(n Node) int {
	idx := len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.adj = append(g.adj, nil)
	return idx
}

// SetNode overwrites the node at index i in place.
func (g *Graph) SetNode(i int, n Node) error {
	if i < 0 || i >= len(g.nodes) {
		return ErrNodeNotFound
	}
	g.nodes[i] = n
	return nil
}

// FindEdge returns the index of an active edge between u and v, if any.
func (g *Graph) FindEdge(u, v int) (int, bool) {
	for _, eid := range g.adj[u] {
		e := g.edges[eid]
		if !e.Active {
			continue
		}
		if (e.U == u && e.V == v) || (e.U == v && e.V == u) {
			return eid, true
		}
	}
	return -1, false
}

// AddEdge appends a new active edge between u and v and returns its
// index, wiring it into both endpoints' adjacency lists.
func (g *Graph) AddEdge(u, v int, length uint32, weight float64) int {
	idx := len(g.edges)
	g.edges = append(g.edges, Edge{U: u, V: v, Length: length, Weight: weight, Active: true})
	g.adj[u] = append(g.adj[u], idx)
	if v != u {
		g.adj[v] = append(g.adj[v], idx)
	}
	return idx
}

// Deactivate tombstones the edge at index i.
func (g *Graph) Deactivate(i int) error {
	if i < 0 || i >= len(g.edges) {
		return ErrEdgeNotFound
	}
	g.edges[i].Active = false
	return nil
}

// SetApparitionScale overwrites an edge's weight and cached merged PLEF
// in place — used when a merge rewires a neighbor edge (package
// hierarchy). GraphFromLabels sets its initial edges' fields directly.
func (g *Graph) SetApparitionScale(i int, weight float64, merged plef.Plef) error {
	if i < 0 || i >= len(g.edges) {
		return ErrEdgeNotFound
	}
	g.edges[i].Weight = weight
	g.edges[i].MergedEnergy = merged
	return nil
}

// IncidentEdges returns the indices of all edges (active or not) ever
// wired to node n.
func (g *Graph) IncidentEdges(n int) []int {
	out := make([]int, len(g.adj[n]))
	copy(out, g.adj[n])
	return out
}

// ActiveNeighbors returns, for node n, every distinct neighbor reachable
// via an active edge together with the list of active edge indices
// connecting n to that neighbor (normally one, but parallel edges can
// appear transiently when two fused nodes shared a common neighbor).
func (g *Graph) ActiveNeighbors(n int) map[int][]int {
	out := make(map[int][]int)
	for _, eid := range g.adj[n] {
		e := g.edges[eid]
		if !e.Active {
			continue
		}
		other := e.U
		if other == n {
			other = e.V
		}
		out[other] = append(out[other], eid)
	}
	return out
}
