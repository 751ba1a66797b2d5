// Package hierarchylabellisation computes a hierarchical image
// segmentation from a multichannel raster image.
//
// Given an image and a target number of initial regions, BuildHierarchy
// produces an initial SLIC oversegmentation into superpixels and a
// binary partition tree recording successive merges of adjacent
// regions, ordered by the scale at which each merge becomes optimal
// under a piecewise-affine Mumford-Shah energy functional. CutHierarchy
// collapses that tree at any scale into a flat segmentation.
//
// Subpackages:
//
//	raster/     — read-only image view, TIFF/PNG codecs, boundary overlay
//	slic/       — SLIC superpixel seeding and clustering
//	region/     — region adjacency graph with per-node statistics
//	plef/       — concave piecewise-linear energy function algebra
//	hierarchy/  — binary partition tree construction and cut
//
// The segmentation pipeline is single-threaded and cooperative: no
// internal suspension occurs, and the only I/O happens at the raster
// boundary (image decode/encode), outside the algorithmic core.
package hierarchylabellisation
