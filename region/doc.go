// Package region builds and maintains the region adjacency graph (RAG)
// that sits between SLIC superpixel labels and the binary partition
// tree: one node per region, one edge per pair of adjacent regions,
// each node carrying running pixel statistics and a piecewise-linear
// energy function (see package plef) giving its best achievable
// Mumford-Shah energy at any scale.
//
// Graph is append-only and index-stable: nodes and edges are never
// removed, only tombstoned (Edge.Active=false), because the binary
// partition tree builder in package hierarchy relies on node indices
// never being reused once assigned (its Parents array indexes directly
// into the same numbering).
package region
