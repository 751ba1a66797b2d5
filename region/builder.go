package region

import (
	"github.com/IGNF/hierarchy-labellisation/plef"
	"github.com/IGNF/hierarchy-labellisation/raster"
)

// GraphFromLabels builds the region adjacency graph in a single pass
// over the label map: one node per label value in [0, max(labels)],
// statistics accumulated per pixel, one edge per adjacent label pair
// with its shared border length, and the image frame's perimeter
// contribution added once per pixel on each of the four border
// rows/columns (corners are therefore counted twice, once per axis they
// belong to).
//
// labels must be row-major, length img.Width*img.Height, with every
// value in [0, N) for some N (the label count). maxPieces bounds the
// PLEF truncation used for the initial edge weights; it defaults to
// plef.DefaultMaxPieces and should match whatever maxPieces a later
// hierarchy.Build call over this graph uses, so every apparition scale
// in the tree is computed under the same truncation policy.
func GraphFromLabels(img *raster.Image, labels []uint32, maxPieces ...int) (*Graph, error) {
	if len(labels) == 0 {
		return nil, ErrEmptyLabels
	}
	if len(labels) != img.Width*img.Height {
		return nil, ErrShapeMismatch
	}

	mp := plef.DefaultMaxPieces
	if len(maxPieces) > 0 {
		mp = maxPieces[0]
	}

	width, height := img.Width, img.Height

	var numVertex uint32
	for _, l := range labels {
		if l+1 > numVertex {
			numVertex = l + 1
		}
	}

	g := NewGraph(img.Channels)
	for i := uint32(0); i < numVertex; i++ {
		g.AddNode(newNode(img.Channels))
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			label := int(raster.Label(labels, width, x, y))

			node := g.nodes[label]
			node.Area++
			pixel := img.At(x, y)
			for c := 0; c < img.Channels; c++ {
				v := uint64(pixel[c])
				node.Values[c] += v
				node.ValuesSq[c] += v * v
			}
			g.nodes[label] = node

			// Right and bottom neighbors only: each interior border is
			// thus visited exactly once across the whole pass.
			for _, d := range [2][2]int{{1, 0}, {0, 1}} {
				nx, ny := x+d[0], y+d[1]
				if nx >= width || ny >= height {
					continue
				}
				nLabel := int(raster.Label(labels, width, nx, ny))
				if nLabel == label {
					continue
				}

				ni := g.nodes[label]
				ni.Perimeter++
				g.nodes[label] = ni
				nj := g.nodes[nLabel]
				nj.Perimeter++
				g.nodes[nLabel] = nj

				eid, ok := g.FindEdge(label, nLabel)
				if !ok {
					eid = g.AddEdge(label, nLabel, 0, 0)
				}
				g.edges[eid].Length++
			}
		}
	}

	// Every pixel touching the image frame gets one extra perimeter unit
	// per border axis it lies on, since the frame itself counts as a
	// region boundary.
	for x := 0; x < width; x++ {
		top := g.nodes[raster.Label(labels, width, x, 0)]
		top.Perimeter++
		g.nodes[raster.Label(labels, width, x, 0)] = top

		bottom := g.nodes[raster.Label(labels, width, x, height-1)]
		bottom.Perimeter++
		g.nodes[raster.Label(labels, width, x, height-1)] = bottom
	}
	for y := 0; y < height; y++ {
		left := g.nodes[raster.Label(labels, width, 0, y)]
		left.Perimeter++
		g.nodes[raster.Label(labels, width, 0, y)] = left

		right := g.nodes[raster.Label(labels, width, width-1, y)]
		right.Perimeter++
		g.nodes[raster.Label(labels, width, width-1, y)] = right
	}

	for i := range g.nodes {
		fidelity := DataFidelity(g.nodes[i].Area, g.nodes[i].Values, g.nodes[i].ValuesSq)
		g.nodes[i].OptimalEnergy = plef.FromPiece(plef.NewPiece(0, fidelity, float64(g.nodes[i].Perimeter)))
	}

	// Each edge's weight is the apparition scale of its endpoints,
	// computed once here and cached on the edge so the eventual merge
	// (package hierarchy) never redoes this sum/infimum.
	for i := range g.edges {
		e := g.edges[i]
		merged, scale := ApparitionScale(g.nodes[e.U], g.nodes[e.V], e.Length, mp)
		g.edges[i].Weight = scale
		g.edges[i].MergedEnergy = merged
	}

	return g, nil
}
