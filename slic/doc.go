// Package slic implements Simple Linear Iterative Clustering superpixel
// oversegmentation: uniform seed placement with gradient perturbation
// (grid.go, seed.go), the assign/update clustering loop bounded to a
// 2S×2S window around each seed (clusterer.go), and a post-pass that
// enforces label connectivity (connectivity.go).
//
// The output is a row-major label map with values in [0, N) suitable as
// input to package region's graph builder.
package slic
