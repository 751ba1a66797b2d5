package slic

import (
	"context"
	"testing"

	"github.com/IGNF/hierarchy-labellisation/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCluster_TwoHalvesSeparatedByColor(t *testing.T) {
	// 8x4 image, left half near-black, right half near-white: SLIC with
	// K=2 should recover a label map with exactly two distinct labels
	// that stay on their respective sides of the image.
	const width, height = 8, 4
	pix := make([]byte, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			base := (y*width + x) * 3
			v := byte(10)
			if x >= width/2 {
				v = 240
			}
			pix[base], pix[base+1], pix[base+2] = v, v, v
		}
	}
	img, err := raster.NewImage(width, height, 3, pix)
	require.NoError(t, err)

	lm, err := Cluster(context.Background(), img, 2)
	require.NoError(t, err)

	require.Equal(t, width, lm.Width)
	require.Equal(t, height, lm.Height)

	seen := make(map[uint32]bool)
	for _, l := range lm.Labels {
		seen[l] = true
	}
	assert.LessOrEqual(t, len(seen), 2)
	assert.GreaterOrEqual(t, len(seen), 1)

	leftLabel := lm.Labels[0]
	rightLabel := lm.Labels[width-1]
	if len(seen) == 2 {
		assert.NotEqual(t, leftLabel, rightLabel)
	}
}

func TestCluster_RespectsCancellation(t *testing.T) {
	img, err := raster.NewImage(10, 10, 3, make([]byte, 10*10*3))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lm, err := Cluster(ctx, img, 4)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotNil(t, lm)
}

func TestCluster_InvalidSeedCount(t *testing.T) {
	img, err := raster.NewImage(2, 2, 3, make([]byte, 12))
	require.NoError(t, err)

	_, err = Cluster(context.Background(), img, 0)
	assert.ErrorIs(t, err, ErrInvalidTotalSeeds)
}
