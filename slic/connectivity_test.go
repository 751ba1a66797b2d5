package slic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnforceConnectivity_SplitsDisjointSameLabelRegions(t *testing.T) {
	// 1x4 row, labels [0,1,0,1]: label 0 appears in two disjoint
	// components that must be split into distinct final labels.
	labels := []uint32{0, 1, 0, 1}
	out := enforceConnectivity(labels, 4, 1, 1)

	assert.NotEqual(t, out[0], out[2], "disjoint same-label components must split")
}

func TestEnforceConnectivity_ContiguousFinalLabels(t *testing.T) {
	labels := []uint32{0, 0, 1, 1, 2, 2}
	out := enforceConnectivity(labels, 6, 1, 1)

	seen := make(map[uint32]bool)
	for _, l := range out {
		seen[l] = true
	}
	for i := uint32(0); i < uint32(len(seen)); i++ {
		assert.True(t, seen[i], "final labels must be contiguous starting at 0")
	}
}

func TestEnforceConnectivity_MergesTinyComponent(t *testing.T) {
	// A single stray pixel of label 1 inside a sea of label 0, with a
	// huge threshold forcing the merge.
	labels := []uint32{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	}
	out := enforceConnectivity(labels, 3, 3, 100)

	center := out[4]
	for i, l := range out {
		if i == 4 {
			continue
		}
		assert.Equal(t, l, center, "tiny component must merge into its only neighbor")
	}
}
