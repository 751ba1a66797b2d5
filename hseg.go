package hierarchylabellisation

import (
	"context"
	"fmt"

	"github.com/IGNF/hierarchy-labellisation/hierarchy"
	"github.com/IGNF/hierarchy-labellisation/plef"
	"github.com/IGNF/hierarchy-labellisation/raster"
	"github.com/IGNF/hierarchy-labellisation/region"
	"github.com/IGNF/hierarchy-labellisation/slic"
)

// Hierarchy is the result of BuildHierarchy: the initial superpixel
// label map plus the binary partition tree built over its region
// adjacency graph.
type Hierarchy struct {
	Width, Height int
	Labels        []uint32
	Tree          *hierarchy.Tree
}

// MaxLevel returns the largest birth level recorded in the tree, 0 for
// a tree with no merges.
func (h *Hierarchy) MaxLevel() float64 {
	var max float64
	for _, l := range h.Tree.Levels {
		if l > max {
			max = l
		}
	}
	return max
}

// BuildHierarchy runs the full pipeline: SLIC oversegmentation into
// nClusters superpixels, region adjacency graph construction, and
// binary partition tree building. ctx is forwarded to both long-running
// stages (slic.Cluster, hierarchy.Build) for cooperative cancellation.
func BuildHierarchy(ctx context.Context, img *raster.Image, nClusters int) (*Hierarchy, error) {
	labelMap, err := slic.Cluster(ctx, img, nClusters)
	if err != nil {
		return nil, fmt.Errorf("build hierarchy: slic clustering: %w", err)
	}

	g, err := region.GraphFromLabels(img, labelMap.Labels, plef.DefaultMaxPieces)
	if err != nil {
		return nil, fmt.Errorf("build hierarchy: graph construction: %w", err)
	}

	tree, err := hierarchy.Build(ctx, g, hierarchy.WithMaxPieces(plef.DefaultMaxPieces))
	if err != nil {
		return nil, fmt.Errorf("build hierarchy: tree build: %w", err)
	}

	return &Hierarchy{
		Width:  img.Width,
		Height: img.Height,
		Labels: labelMap.Labels,
		Tree:   tree,
	}, nil
}

// CutHierarchy flattens h at scale level, returning a per-pixel label
// array.
func CutHierarchy(h *Hierarchy, level float64) ([]uint32, error) {
	return hierarchy.Cut(h.Tree, h.Labels, level)
}
