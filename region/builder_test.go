package region

import (
	"testing"

	"github.com/IGNF/hierarchy-labellisation/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGraphFromLabels_ThreeRegionGrid checks node/edge statistics against
// a hand-worked example: a 3x3 image split into three labels
//
//	0 0 1
//	0 0 1
//	2 2 2
//
// with pixel value (y*3+x)*3+c for channel c.
func TestGraphFromLabels_ThreeRegionGrid(t *testing.T) {
	const width, height, channels = 3, 3, 3
	pix := make([]byte, width*height*channels)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			base := (y*width + x) * channels
			for c := 0; c < channels; c++ {
				pix[base+c] = byte(base + c)
			}
		}
	}
	img, err := raster.NewImage(width, height, channels, pix)
	require.NoError(t, err)

	labels := []uint32{
		0, 0, 1,
		0, 0, 1,
		2, 2, 2,
	}

	g, err := GraphFromLabels(img, labels)
	require.NoError(t, err)

	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 3, g.EdgeCount())

	n0, err := g.Node(0)
	require.NoError(t, err)
	n1, err := g.Node(1)
	require.NoError(t, err)
	n2, err := g.Node(2)
	require.NoError(t, err)

	assert.Equal(t, uint32(4), n0.Area)
	assert.Equal(t, uint32(2), n1.Area)
	assert.Equal(t, uint32(3), n2.Area)

	assert.Equal(t, uint32(8), n0.Perimeter)
	assert.Equal(t, uint32(6), n1.Perimeter)
	assert.Equal(t, uint32(8), n2.Perimeter)

	assert.Equal(t, []uint64{24, 28, 32}, n0.Values)
	assert.Equal(t, []uint64{21, 23, 25}, n1.Values)
	assert.Equal(t, []uint64{63, 66, 69}, n2.Values)

	e01, ok := g.FindEdge(0, 1)
	require.True(t, ok)
	e02, ok := g.FindEdge(0, 2)
	require.True(t, ok)
	e12, ok := g.FindEdge(1, 2)
	require.True(t, ok)

	edge01, err := g.Edge(e01)
	require.NoError(t, err)
	edge02, err := g.Edge(e02)
	require.NoError(t, err)
	edge12, err := g.Edge(e12)
	require.NoError(t, err)

	assert.Equal(t, uint32(2), edge01.Length)
	assert.Equal(t, uint32(2), edge02.Length)
	assert.Equal(t, uint32(1), edge12.Length)
}

func TestGraphFromLabels_OptimalEnergySeeded(t *testing.T) {
	pix := make([]byte, 2*1*1)
	pix[0], pix[1] = 4, 6
	img, err := raster.NewImage(2, 1, 1, pix)
	require.NoError(t, err)

	g, err := GraphFromLabels(img, []uint32{0, 1})
	require.NoError(t, err)

	n0, err := g.Node(0)
	require.NoError(t, err)
	assert.Equal(t, 1, n0.OptimalEnergy.Len())
	assert.Equal(t, DataFidelity(n0.Area, n0.Values, n0.ValuesSq), n0.OptimalEnergy.Eval(0))
}

func TestGraphFromLabels_ShapeMismatch(t *testing.T) {
	img, err := raster.NewImage(2, 2, 1, make([]byte, 4))
	require.NoError(t, err)

	_, err = GraphFromLabels(img, []uint32{0, 0, 0})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestGraphFromLabels_EmptyLabels(t *testing.T) {
	img, err := raster.NewImage(1, 1, 1, make([]byte, 1))
	require.NoError(t, err)

	_, err = GraphFromLabels(img, nil)
	assert.ErrorIs(t, err, ErrEmptyLabels)
}
