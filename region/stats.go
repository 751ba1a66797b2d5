package region

import "github.com/IGNF/hierarchy-labellisation/plef"

// DataFidelity computes F(area, values, valuesSq) = sum over channels of
// (valuesSq_c - values_c^2/area): the intra-region variance term (area
// times the per-pixel squared error) that seeds each leaf node's
// optimal-energy PLEF and each merged node's "keep together" candidate
// line. Non-negative by Cauchy-Schwarz provided valuesSq_c*area >=
// values_c^2, which running sums over real pixel data always satisfy.
func DataFidelity(area uint32, values, valuesSq []uint64) float64 {
	var sum float64
	a := float64(area)
	for c := range values {
		v := float64(values[c])
		sum += float64(valuesSq[c]) - v*v/a
	}
	return sum
}

// MergedStats computes the pooled area/perimeter/values/valuesSq that
// result from fusing two regions connected by an edge of the given
// shared length.
func MergedStats(a, b Node, sharedLength uint32) (area uint32, perimeter uint32, values, valuesSq []uint64) {
	area = a.Area + b.Area
	perimeter = a.Perimeter + b.Perimeter - 2*sharedLength
	values = make([]uint64, len(a.Values))
	valuesSq = make([]uint64, len(a.ValuesSq))
	for c := range values {
		values[c] = a.Values[c] + b.Values[c]
		valuesSq[c] = a.ValuesSq[c] + b.ValuesSq[c]
	}
	return area, perimeter, values, valuesSq
}

// ApparitionScale computes the scale at which merging regions a and b —
// connected by an edge of the given shared length — becomes optimal
// under the Mumford-Shah energy: it sums the two regions' optimal-energy
// PLEFs (the "stay split" cost) and takes its infimum against the
// merged region's data-fidelity line (the "merge" cost). The merged PLEF
// is returned alongside the scale so callers (package hierarchy) can
// reuse it as the new node's OptimalEnergy instead of recomputing it.
func ApparitionScale(a, b Node, sharedLength uint32, maxPieces int) (merged plef.Plef, scale float64) {
	area, perimeter, values, valuesSq := MergedStats(a, b, sharedLength)
	fidelity := DataFidelity(area, values, valuesSq)

	merged = a.OptimalEnergy.Sum(b.OptimalEnergy, maxPieces)
	candidate := plef.NewPiece(0, fidelity, float64(perimeter))
	scale = merged.Infimum(candidate)

	return merged, scale
}
