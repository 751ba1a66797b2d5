// Package hierarchy builds and cuts the binary partition tree over a
// region adjacency graph: Build agglomeratively merges regions in
// ascending order of apparition scale using a lazy-deletion priority
// queue, and Cut flattens the resulting tree at a chosen scale back
// into a label map.
package hierarchy
