package raster

import "errors"

// ErrInputShape indicates a byte buffer's length is inconsistent with
// its declared Width*Height*Channels.
var ErrInputShape = errors.New("raster: pixel buffer length inconsistent with declared dimensions")

// Image is a read-only, row-major H×W×C byte tensor: Pix holds
// Height*Width*Channels bytes with pixel (x,y) channel c at
// Pix[(y*Width+x)*Channels+c]. It is deep-copied on construction so
// that callers cannot mutate an Image out from under algorithms that
// hold a reference to it.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// NewImage validates pix's length against width*height*channels and
// returns a deep copy wrapped as an Image.
func NewImage(width, height, channels int, pix []byte) (*Image, error) {
	if width <= 0 || height <= 0 || channels <= 0 {
		return nil, ErrInputShape
	}
	if len(pix) != width*height*channels {
		return nil, ErrInputShape
	}
	cp := make([]byte, len(pix))
	copy(cp, pix)
	return &Image{Width: width, Height: height, Channels: channels, Pix: cp}, nil
}

// InBounds reports whether (x,y) lies within the image.
func (img *Image) InBounds(x, y int) bool {
	return x >= 0 && x < img.Width && y >= 0 && y < img.Height
}

// index returns the byte offset of pixel (x,y)'s first channel.
func (img *Image) index(x, y int) int {
	return (y*img.Width + x) * img.Channels
}

// At returns a view of pixel (x,y)'s channel bytes. The returned slice
// aliases img.Pix; callers must not mutate it.
func (img *Image) At(x, y int) []byte {
	i := img.index(x, y)
	return img.Pix[i : i+img.Channels]
}

// Label returns the label at (x,y) from a row-major label map sized
// Width*Height, matching img's dimensions.
func Label(labels []uint32, width, x, y int) uint32 {
	return labels[y*width+x]
}
