package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayLabels_PaintsBoundariesOnly(t *testing.T) {
	// 2x2 image, two labels split down the middle column:
	// 0 1
	// 0 1
	pix := make([]byte, 2*2*3)
	for i := range pix {
		pix[i] = 200
	}
	img, err := NewImage(2, 2, 3, pix)
	require.NoError(t, err)

	labels := []uint32{0, 1, 0, 1}

	out, err := DisplayLabels(img, labels)
	require.NoError(t, err)

	require.Equal(t, 4, out.Channels)
	require.Len(t, out.Pix, 2*2*4)

	// Every pixel here is adjacent (horizontally) to the other label, so
	// the whole 2x2 image is boundary.
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			i := (y*2 + x) * 4
			assert.Equal(t, []byte{0, 0, 0, 255}, out.Pix[i:i+4])
		}
	}
}

func TestDisplayLabels_InteriorUnpainted(t *testing.T) {
	// 3x1 uniform-label image: no boundaries anywhere.
	pix := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	img, err := NewImage(3, 1, 3, pix)
	require.NoError(t, err)
	labels := []uint32{0, 0, 0}

	out, err := DisplayLabels(img, labels)
	require.NoError(t, err)

	assert.Equal(t, []byte{1, 2, 3, 255}, out.Pix[0:4])
	assert.Equal(t, []byte{4, 5, 6, 255}, out.Pix[4:8])
	assert.Equal(t, []byte{7, 8, 9, 255}, out.Pix[8:12])
}

func TestDisplayLabels_ShapeMismatch(t *testing.T) {
	img, err := NewImage(2, 2, 3, make([]byte, 2*2*3))
	require.NoError(t, err)

	_, err = DisplayLabels(img, []uint32{0, 0, 0})
	assert.ErrorIs(t, err, ErrInputShape)
}
