package slic

import "errors"

// Sentinel errors returned by seed placement and clustering.
var (
	// ErrInvalidTotalSeeds indicates K is zero, negative, or exceeds the
	// number of pixels in the image.
	ErrInvalidTotalSeeds = errors.New("slic: invalid target seed count")
	// ErrInvalidImageIndex indicates a zero-area image (width or height <= 0).
	ErrInvalidImageIndex = errors.New("slic: image has zero area")
	// ErrPerturbConversion indicates a seed's perturbation window could not
	// be evaluated (degenerate single-pixel channel arithmetic).
	ErrPerturbConversion = errors.New("slic: seed perturbation failed")
	// ErrSlicFailure is a catch-all for a degenerate clustering pass (e.g.
	// no seed ever receiving an assigned pixel).
	ErrSlicFailure = errors.New("slic: clustering failed to converge to a valid label map")
)

// Options configures the SLIC clustering loop.
type Options struct {
	Compactness          float64
	IterMax              int
	ConvergenceThreshold float64
}

// Option is a functional option for Options.
type Option func(*Options)

// DefaultOptions returns the SLIC defaults: Compactness=10, IterMax=10,
// ConvergenceThreshold=1e-2.
func DefaultOptions() Options {
	return Options{
		Compactness:          10,
		IterMax:              10,
		ConvergenceThreshold: 1e-2,
	}
}

// WithCompactness sets the color/spatial tradeoff knob `m` used in the
// composite SLIC distance.
func WithCompactness(m float64) Option {
	return func(o *Options) { o.Compactness = m }
}

// WithIterMax bounds the number of assign/update iterations.
func WithIterMax(n int) Option {
	return func(o *Options) { o.IterMax = n }
}

// WithConvergenceThreshold sets the total-centroid-displacement early-exit
// threshold.
func WithConvergenceThreshold(t float64) Option {
	return func(o *Options) { o.ConvergenceThreshold = t }
}

// Seed is a superpixel centroid: a running mean of its assigned pixels'
// channel data plus its spatial position. Mutated in place during
// clustering.
type Seed struct {
	Data []float64
	X, Y float64
}

// LabelMap is a row-major H×W tensor of seed indices.
type LabelMap struct {
	Width, Height int
	Labels        []uint32
}
