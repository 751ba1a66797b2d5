// Package raster provides the boundary components of the segmentation
// pipeline: a read-only H×W×C image view (the data structure every
// other package operates over), TIFF/PNG decode and encode adapters,
// and a label-boundary overlay renderer.
//
// None of the algorithmic core (packages slic, region, plef, hierarchy)
// depends on image decoding or rendering; only this package and the
// cmd/hseg host binding know how bytes on disk become an Image and how
// an Image becomes bytes on disk again.
package raster
