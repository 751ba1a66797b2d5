package slic

import (
	"testing"

	"github.com/IGNF/hierarchy-labellisation/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSeeds_PlacesRoughlyKSeeds(t *testing.T) {
	pix := make([]byte, 20*20*3)
	img, err := raster.NewImage(20, 20, 3, pix)
	require.NoError(t, err)

	seeds, s, err := InitSeeds(img, 4)
	require.NoError(t, err)
	assert.NotEmpty(t, seeds)
	assert.Greater(t, s, 0)
	for _, seed := range seeds {
		assert.True(t, seed.X >= 0 && seed.X < 20)
		assert.True(t, seed.Y >= 0 && seed.Y < 20)
	}
}

func TestInitSeeds_InvalidCount(t *testing.T) {
	img, err := raster.NewImage(2, 2, 3, make([]byte, 12))
	require.NoError(t, err)

	_, _, err = InitSeeds(img, 0)
	assert.ErrorIs(t, err, ErrInvalidTotalSeeds)

	_, _, err = InitSeeds(img, 100)
	assert.ErrorIs(t, err, ErrInvalidTotalSeeds)
}

func TestPerturb_UniformRegionPicksFirstZeroGradientCandidate(t *testing.T) {
	// 5x5 uniform image: every in-bounds 3x3 candidate around the seed
	// has zero gradient, so the first-scanned candidate (top-left of the
	// window) wins, per the strict "<" comparison in perturb.
	pix := make([]byte, 5*5*3)
	for i := range pix {
		pix[i] = 100
	}
	img, err := raster.NewImage(5, 5, 3, pix)
	require.NoError(t, err)

	seed := Seed{Data: pixelToFloat(img.At(2, 2)), X: 2, Y: 2}
	perturb(&seed, img)

	assert.Equal(t, 1.0, seed.X)
	assert.Equal(t, 1.0, seed.Y)
}
