package slic

import (
	"context"
	"math"

	"github.com/IGNF/hierarchy-labellisation/raster"
)

// Cluster runs SLIC clustering over img with K target seeds and returns
// the final, connectivity-enforced label map. ctx is checked once per
// outer assign/update iteration, allowing cooperative cancellation of a
// long-running pass; a cancelled pass returns the label map as of the
// last completed iteration alongside ctx.Err().
func Cluster(ctx context.Context, img *raster.Image, k int, opts ...Option) (*LabelMap, error) {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	seeds, s, err := InitSeeds(img, k)
	if err != nil {
		return nil, err
	}

	mOverSSq := math.Pow(cfg.Compactness/float64(s), 2)
	r := &runner{
		img:      img,
		seeds:    seeds,
		s:        s,
		mOverSSq: mOverSSq,
	}
	r.labels = make([]uint32, img.Width*img.Height)
	r.dist = make([]float64, img.Width*img.Height)

	var loopErr error
	for iter := 0; iter < cfg.IterMax; iter++ {
		if err := ctx.Err(); err != nil {
			loopErr = err
			break
		}

		r.assign()
		displacement := r.update()

		if displacement < cfg.ConvergenceThreshold {
			break
		}
	}

	labels := enforceConnectivity(r.labels, img.Width, img.Height, s)

	return &LabelMap{Width: img.Width, Height: img.Height, Labels: labels}, loopErr
}

// runner holds the mutable state of a single SLIC clustering pass.
type runner struct {
	img      *raster.Image
	seeds    []Seed
	s        int
	mOverSSq float64
	labels   []uint32
	dist     []float64
}

// assign recomputes, for every seed, the pixels within its 2S×2S window
// and updates the global best-label/best-distance arrays.
func (r *runner) assign() {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
	}

	width, height := r.img.Width, r.img.Height

	for k := range r.seeds {
		seed := r.seeds[k]
		sx, sy := int(seed.X), int(seed.Y)

		xMin, xMax := clampWindow(sx-r.s, sx+r.s, width)
		yMin, yMax := clampWindow(sy-r.s, sy+r.s, height)

		for y := yMin; y <= yMax; y++ {
			for x := xMin; x <= xMax; x++ {
				pixel := pixelToFloat(r.img.At(x, y))
				d := compositeDistance(pixel, float64(x), float64(y), seed.Data, seed.X, seed.Y, r.mOverSSq)

				idx := y*width + x
				if d < r.dist[idx] {
					r.dist[idx] = d
					r.labels[idx] = uint32(k)
				}
			}
		}
	}
}

// update recomputes each seed's center as the mean of its assigned
// pixels, leaving unassigned seeds' centers unchanged. It returns the
// total centroid displacement across all seeds, used as the convergence
// signal for the outer clustering loop.
func (r *runner) update() float64 {
	width := r.img.Width
	channels := r.img.Channels

	sums := make([][]float64, len(r.seeds))
	xs := make([]float64, len(r.seeds))
	ys := make([]float64, len(r.seeds))
	counts := make([]int, len(r.seeds))
	for k := range sums {
		sums[k] = make([]float64, channels)
	}

	for idx, label := range r.labels {
		x := idx % width
		y := idx / width
		pixel := r.img.At(x, y)
		for c := 0; c < channels; c++ {
			sums[label][c] += float64(pixel[c])
		}
		xs[label] += float64(x)
		ys[label] += float64(y)
		counts[label]++
	}

	var totalDisplacement float64
	for k := range r.seeds {
		if counts[k] == 0 {
			continue
		}
		n := float64(counts[k])
		newData := make([]float64, channels)
		for c := 0; c < channels; c++ {
			newData[c] = sums[k][c] / n
		}
		newX := xs[k] / n
		newY := ys[k] / n

		totalDisplacement += math.Sqrt(spatialDistSq(r.seeds[k].X, r.seeds[k].Y, newX, newY))

		r.seeds[k].Data = newData
		r.seeds[k].X = newX
		r.seeds[k].Y = newY
	}

	return totalDisplacement
}

// clampWindow clips [lo, hi] into [0, limit-1].
func clampWindow(lo, hi, limit int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > limit-1 {
		hi = limit - 1
	}
	return lo, hi
}
