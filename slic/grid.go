package slic

import "math"

// gridInterval returns the grid spacing S = floor(sqrt(W*H/K)), the
// integer seed-to-seed distance that xSeeds/ySeeds, the spread
// correction, and the window/threshold math downstream all key off of.
func gridInterval(width, height, k int) int {
	return int(math.Sqrt(float64(width*height) / float64(k)))
}

// ceilDiv returns ceil(a/b) for positive floats, truncated to an int.
func ceilDiv(a, b float64) int {
	return int(math.Ceil(a / b))
}

// spatialDistSq returns the squared Euclidean distance between two
// (x,y) pixel positions.
func spatialDistSq(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// colorDistSq returns the squared Euclidean distance between two channel
// vectors, over the first three channels only (or fewer, if the image has
// fewer channels). Limiting color distance to three channels keeps the
// clustering term comparable across images with varying channel counts.
func colorDistSq(a, b []float64) float64 {
	n := 3
	if len(a) < n {
		n = len(a)
	}
	var sum float64
	for c := 0; c < n; c++ {
		d := a[c] - b[c]
		sum += d * d
	}
	return sum
}

// compositeDistance computes D(p,k) = d_color(p,k) + mOverSSq*d_xy(p,k),
// blending color similarity and spatial proximity into one assignment
// metric, weighted by mOverSSq = (compactness/S)^2.
func compositeDistance(pixel []float64, px, py float64, seed []float64, sx, sy float64, mOverSSq float64) float64 {
	return colorDistSq(pixel, seed) + mOverSSq*spatialDistSq(px, py, sx, sy)
}

// fullChannelDistSq is the squared Euclidean distance over every channel.
// The seed perturbation gradient uses this instead of colorDistSq: it
// measures local image variation, not cluster assignment, so it isn't
// restricted to the first three channels.
func fullChannelDistSq(a, b []float64) float64 {
	var sum float64
	for c := range a {
		d := a[c] - b[c]
		sum += d * d
	}
	return sum
}
