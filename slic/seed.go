package slic

import (
	"math"

	"github.com/IGNF/hierarchy-labellisation/raster"
)

// InitSeeds places K approximately-uniform seeds over img and perturbs
// each to its local 3×3 gradient minimum. It returns the seeds alongside
// the integer grid spacing S they were laid out on, which callers thread
// through the rest of clustering (window radius, compactness weighting,
// connectivity threshold) so every stage agrees on the same spacing.
func InitSeeds(img *raster.Image, k int) ([]Seed, int, error) {
	width, height := img.Width, img.Height
	if width <= 0 || height <= 0 {
		return nil, 0, ErrInvalidImageIndex
	}
	if k <= 0 || k > width*height {
		return nil, 0, ErrInvalidTotalSeeds
	}

	s := gridInterval(width, height, k)
	if s <= 0 {
		return nil, 0, ErrInvalidTotalSeeds
	}
	sf := float64(s)

	xSeeds := ceilDiv(float64(width), sf)
	ySeeds := ceilDiv(float64(height), sf)
	if sf*float64(xSeeds) > float64(width) {
		xSeeds--
	}
	if sf*float64(ySeeds) > float64(height) {
		ySeeds--
	}
	for xSeeds*ySeeds > k {
		xSeeds--
		ySeeds--
	}
	if xSeeds < 1 {
		xSeeds = 1
	}
	if ySeeds < 1 {
		ySeeds = 1
	}

	xc := (float64(width) - float64(xSeeds)*sf) / float64(xSeeds)
	yc := (float64(height) - float64(ySeeds)*sf) / float64(ySeeds)

	seeds := make([]Seed, 0, xSeeds*ySeeds)
	for i := 0; i < ySeeds; i++ {
		y := float64(i)*sf + sf/2 + math.Floor(float64(i)*yc)
		for j := 0; j < xSeeds; j++ {
			x := float64(j)*sf + sf/2 + math.Floor(float64(j)*xc)
			xi, yi := int(x), int(y)
			if xi < 0 {
				xi = 0
			}
			if xi >= width {
				xi = width - 1
			}
			if yi < 0 {
				yi = 0
			}
			if yi >= height {
				yi = height - 1
			}

			data := pixelToFloat(img.At(xi, yi))
			seeds = append(seeds, Seed{Data: data, X: float64(xi), Y: float64(yi)})
		}
	}

	for i := range seeds {
		perturb(&seeds[i], img)
	}

	return seeds, s, nil
}

// pixelToFloat converts a byte channel vector to float64.
func pixelToFloat(pixel []byte) []float64 {
	out := make([]float64, len(pixel))
	for i, v := range pixel {
		out[i] = float64(v)
	}
	return out
}

// samplePixel returns the float64 channel vector at (x,y), or a
// zero vector if out of bounds.
func samplePixel(img *raster.Image, x, y int) []float64 {
	if !img.InBounds(x, y) {
		return make([]float64, img.Channels)
	}
	return pixelToFloat(img.At(x, y))
}

// perturb moves seed to the pixel in its 3×3 neighborhood minimizing the
// two-point gradient ‖I(x+1,y)-I(x-1,y)‖² + ‖I(x,y+1)-I(x,y-1)‖², settling
// seeds away from edges and noisy pixels before clustering begins.
func perturb(seed *Seed, img *raster.Image) {
	min := math.Inf(1)
	sx, sy := int(seed.X), int(seed.Y)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			cx, cy := sx+dx, sy+dy
			if !img.InBounds(cx, cy) {
				continue
			}

			a := samplePixel(img, cx+1, cy)
			b := samplePixel(img, cx-1, cy)
			c := samplePixel(img, cx, cy+1)
			d := samplePixel(img, cx, cy-1)

			gradient := fullChannelDistSq(a, b) + fullChannelDistSq(c, d)
			if gradient < min {
				min = gradient
				seed.Data = pixelToFloat(img.At(cx, cy))
				seed.X = float64(cx)
				seed.Y = float64(cy)
			}
		}
	}
}
