package raster

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat indicates an image format with no decoder in
// this package. The decoders themselves never return it: fromImage
// converts any color model through RGBA.
var ErrUnsupportedFormat = errors.New("raster: unsupported image format")

// DecodeTIFF decodes a TIFF (or GeoTIFF, for the IFDs x/image/tiff
// understands) stream into an Image, taking only the first three
// channels of each pixel.
func DecodeTIFF(r io.Reader) (*Image, error) {
	img, err := tiff.Decode(r)
	if err != nil {
		return nil, err
	}
	return fromImage(img)
}

// EncodeTIFF writes img as an 8-bit RGB TIFF.
func EncodeTIFF(w io.Writer, img *Image) error {
	return tiff.Encode(w, toRGBA(img), nil)
}

// DecodePNG decodes a PNG stream into an Image.
func DecodePNG(r io.Reader) (*Image, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	return fromImage(img)
}

// EncodePNG writes img as an 8-bit PNG. If img has 4 channels it is
// encoded as RGBA; otherwise as RGB (alpha fully opaque).
func EncodePNG(w io.Writer, img *Image) error {
	return png.Encode(w, toRGBA(img))
}

// fromImage converts a decoded image.Image into an Image, taking the
// first three (RGB) channels of each pixel.
func fromImage(img image.Image) (*Image, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pix := make([]byte, width*height*3)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pix[i] = byte(r >> 8)
			pix[i+1] = byte(g >> 8)
			pix[i+2] = byte(b >> 8)
			i += 3
		}
	}
	return NewImage(width, height, 3, pix)
}

// toRGBA renders an Image's first three channels as a standard library
// image.RGBA, for use with format encoders that expect an image.Image.
// The fourth channel, if present, becomes alpha; otherwise alpha is
// fully opaque.
func toRGBA(img *Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			px := img.At(x, y)
			var r, g, b byte
			a := byte(255)
			if len(px) > 0 {
				r = px[0]
			}
			if len(px) > 1 {
				g = px[1]
			}
			if len(px) > 2 {
				b = px[2]
			}
			if len(px) > 3 {
				a = px[3]
			}
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: a})
		}
	}
	return out
}
