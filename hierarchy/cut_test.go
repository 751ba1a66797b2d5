package hierarchy

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCut_ZeroEqualsInitialLabels(t *testing.T) {
	g := threeRegionGraph(t)
	tree, err := Build(context.Background(), g)
	require.NoError(t, err)

	initial := []uint32{0, 0, 1, 0, 0, 1, 2, 2, 2}
	out, err := Cut(tree, initial, 0)
	require.NoError(t, err)
	assert.Equal(t, initial, out)
}

func TestCut_InfinityCollapsesConnectedGraph(t *testing.T) {
	g := threeRegionGraph(t)
	tree, err := Build(context.Background(), g)
	require.NoError(t, err)

	initial := []uint32{0, 0, 1, 0, 0, 1, 2, 2, 2}
	out, err := Cut(tree, initial, math.Inf(1))
	require.NoError(t, err)

	first := out[0]
	for _, l := range out {
		assert.Equal(t, first, l)
	}
}

func TestCut_LeafOutOfRange(t *testing.T) {
	g := threeRegionGraph(t)
	tree, err := Build(context.Background(), g)
	require.NoError(t, err)

	_, err = Cut(tree, []uint32{99}, 1.0)
	assert.ErrorIs(t, err, ErrLeafOutOfRange)
}
