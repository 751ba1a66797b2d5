package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImage_ShapeValidation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		img, err := NewImage(2, 2, 3, make([]byte, 2*2*3))
		require.NoError(t, err)
		assert.Equal(t, 2, img.Width)
	})
	t.Run("short buffer", func(t *testing.T) {
		_, err := NewImage(2, 2, 3, make([]byte, 5))
		assert.ErrorIs(t, err, ErrInputShape)
	})
	t.Run("zero dims", func(t *testing.T) {
		_, err := NewImage(0, 2, 3, nil)
		assert.ErrorIs(t, err, ErrInputShape)
	})
}

func TestNewImage_DeepCopies(t *testing.T) {
	src := make([]byte, 1*1*3)
	src[0] = 7
	img, err := NewImage(1, 1, 3, src)
	require.NoError(t, err)

	src[0] = 99
	assert.Equal(t, byte(7), img.At(0, 0)[0], "Image must not alias caller's backing array")
}

func TestImage_AtAndInBounds(t *testing.T) {
	pix := []byte{
		1, 2, 3, 4, 5, 6,
		7, 8, 9, 10, 11, 12,
	}
	img, err := NewImage(2, 1, 3, pix)
	require.NoError(t, err)

	assert.Equal(t, []byte{1, 2, 3}, img.At(0, 0))
	assert.Equal(t, []byte{4, 5, 6}, img.At(1, 0))
	assert.True(t, img.InBounds(1, 0))
	assert.False(t, img.InBounds(2, 0))
	assert.False(t, img.InBounds(-1, 0))
}
