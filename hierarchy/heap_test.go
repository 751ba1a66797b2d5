package hierarchy

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgePQ_PopsAscendingWeight(t *testing.T) {
	pq := make(edgePQ, 0, 3)
	heap.Init(&pq)
	heap.Push(&pq, &edgeItem{edgeID: 0, weight: 5})
	heap.Push(&pq, &edgeItem{edgeID: 1, weight: 1})
	heap.Push(&pq, &edgeItem{edgeID: 2, weight: 3})

	var order []float64
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*edgeItem)
		order = append(order, item.weight)
	}

	assert.Equal(t, []float64{1, 3, 5}, order)
}
