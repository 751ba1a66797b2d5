// Command hseg is the CLI host binding for the hierarchical
// segmentation core. It is glue only: decode → core → encode. No
// segmentation algorithm lives here.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	hseg "github.com/IGNF/hierarchy-labellisation"
	"github.com/IGNF/hierarchy-labellisation/hierarchy"
	"github.com/IGNF/hierarchy-labellisation/raster"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("hseg: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hseg",
		Short: "Build and cut hierarchical image segmentations",
	}
	root.AddCommand(newBuildCmd(), newCutCmd())
	return root
}

// treeArtifact is the on-disk JSON shape produced by "hseg build" and
// consumed by "hseg cut".
type treeArtifact struct {
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Labels    []uint32  `json:"labels"`
	Parents   []int     `json:"parents"`
	Levels    []float64 `json:"levels"`
	NumLeaves int       `json:"num_leaves"`
}

func newBuildCmd() *cobra.Command {
	var in, out string
	var clusters int

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Decode an image, run SLIC + binary partition tree build, write a tree artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := decodeImage(in)
			if err != nil {
				return fmt.Errorf("decode %s: %w", in, err)
			}

			log.Printf("clustering %s into %d superpixels", in, clusters)
			h, err := hseg.BuildHierarchy(context.Background(), img, clusters)
			if err != nil {
				return fmt.Errorf("build hierarchy: %w", err)
			}
			log.Printf("built tree: %d leaves, %d nodes, max level %.4f", h.Tree.NumLeaves, len(h.Tree.Parents), h.MaxLevel())

			artifact := treeArtifact{
				Width:     h.Width,
				Height:    h.Height,
				Labels:    h.Labels,
				Parents:   h.Tree.Parents,
				Levels:    h.Tree.Levels,
				NumLeaves: h.Tree.NumLeaves,
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()

			enc := json.NewEncoder(f)
			enc.SetIndent("", "  ")
			if err := enc.Encode(artifact); err != nil {
				return fmt.Errorf("encode tree artifact: %w", err)
			}

			log.Printf("wrote %s", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "input image (TIFF or PNG)")
	cmd.Flags().StringVar(&out, "out", "", "output tree artifact (JSON)")
	cmd.Flags().IntVar(&clusters, "clusters", 100, "target number of initial superpixels")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")

	return cmd
}

func newCutCmd() *cobra.Command {
	var treePath, out string
	var level float64

	cmd := &cobra.Command{
		Use:   "cut",
		Short: "Cut a tree artifact at a scale and write a boundary-overlay PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(treePath)
			if err != nil {
				return fmt.Errorf("open %s: %w", treePath, err)
			}
			defer f.Close()

			var artifact treeArtifact
			if err := json.NewDecoder(f).Decode(&artifact); err != nil {
				return fmt.Errorf("decode tree artifact: %w", err)
			}

			tree := &hierarchy.Tree{
				Parents:   artifact.Parents,
				Levels:    artifact.Levels,
				NumLeaves: artifact.NumLeaves,
			}

			log.Printf("cutting at level %.4f", level)
			labels, err := hierarchy.Cut(tree, artifact.Labels, level)
			if err != nil {
				return fmt.Errorf("cut: %w", err)
			}

			// The cut labels are used purely to trace boundaries; the
			// underlying pixel data for the overlay comes from a flat
			// gray canvas sized to the tree's original image, since the
			// artifact does not carry the source image bytes.
			blank := make([]byte, artifact.Width*artifact.Height*3)
			for i := range blank {
				blank[i] = 128
			}
			img, err := raster.NewImage(artifact.Width, artifact.Height, 3, blank)
			if err != nil {
				return fmt.Errorf("build canvas: %w", err)
			}

			overlay, err := raster.DisplayLabels(img, labels)
			if err != nil {
				return fmt.Errorf("display labels: %w", err)
			}

			of, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer of.Close()

			if err := raster.EncodePNG(of, overlay); err != nil {
				return fmt.Errorf("encode png: %w", err)
			}

			log.Printf("wrote %s", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&treePath, "tree", "", "input tree artifact (JSON)")
	cmd.Flags().StringVar(&out, "out", "", "output boundary overlay (PNG)")
	cmd.Flags().Float64Var(&level, "level", 0, "cut scale")
	cmd.MarkFlagRequired("tree")
	cmd.MarkFlagRequired("out")

	return cmd
}

// decodeImage dispatches to the TIFF or PNG decoder by file extension.
func decodeImage(path string) (*raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		return raster.DecodeTIFF(f)
	case ".png":
		return raster.DecodePNG(f)
	default:
		return nil, raster.ErrUnsupportedFormat
	}
}
