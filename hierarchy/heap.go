package hierarchy

// edgeItem is one priority-queue entry: a reference to a region-graph
// edge together with the apparition scale it had when pushed. Stale
// entries (an edge deactivated by a later merge) are discarded lazily
// on pop rather than removed on push, avoiding an O(log n) heap-fix on
// every deactivation.
type edgeItem struct {
	edgeID int
	weight float64
}

// edgePQ is a min-heap of *edgeItem ordered by ascending weight.
type edgePQ []*edgeItem

func (pq edgePQ) Len() int            { return len(pq) }
func (pq edgePQ) Less(i, j int) bool  { return pq[i].weight < pq[j].weight }
func (pq edgePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*edgeItem)) }
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
