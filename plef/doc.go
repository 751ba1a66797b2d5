// Package plef implements a concave, continuous, piecewise-linear
// energy function (PLEF) over [0, ∞): the representation the binary
// partition tree builder uses to track the best achievable Mumford-Shah
// energy of a region as a function of scale λ.
//
// A Plef is an ordered sequence of affine pieces. Piece i is valid on
// [StartX_i, StartX_{i+1}) (and [StartX_last, ∞) for the last piece).
// Pieces are sorted by StartX ascending, the leading piece has
// StartX == 0, slopes are non-increasing (concavity), and the function
// is continuous at every piece boundary.
//
// Two operations are provided, both O(#pieces): Sum, which adds two
// PLEFs together (capped at MaxPieces to bound per-node memory), and
// Infimum, which merges a PLEF with a single affine "candidate" piece
// and returns the apparition scale — the smallest λ at which the
// candidate becomes optimal.
package plef
