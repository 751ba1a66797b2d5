package plef

import "math"

// Sum returns a Plef representing f+g, truncated to at most maxPieces
// pieces. Pass maxPieces <= 0 to use DefaultMaxPieces.
//
// The two piece lists are walked from the largest StartX downward
// (rightmost piece first); at each step the side with the larger
// StartX advances (both advance on a tie), and a new piece is emitted
// with slope = slope_i + slope_j and StartY evaluated via the affine
// extension of whichever side did not just advance. Truncation keeps
// the rightmost pieces, since Infimum only ever touches the tail of a
// node's Plef; once truncated, the new leftmost piece is re-extended to
// StartX=0 to preserve the "leading piece starts at 0" invariant.
func (f Plef) Sum(g Plef, maxPieces int) Plef {
	if g.IsEmpty() {
		return f.Clone()
	}
	if f.IsEmpty() {
		return g.Clone()
	}
	if maxPieces <= 0 {
		maxPieces = DefaultMaxPieces
	}

	// i, j walk f.pieces and g.pieces from the end (largest StartX) down to 0.
	i, j := len(f.pieces)-1, len(g.pieces)-1
	result := make([]Piece, 0, maxPieces)

	for i >= 0 && j >= 0 && len(result) < maxPieces {
		pi, pj := f.pieces[i], g.pieces[j]
		newSlope := pi.Slope + pj.Slope

		var newStartX, newStartY float64
		if pi.StartX >= pj.StartX {
			newStartX = pi.StartX
			newStartY = pi.StartY + pj.Eval(newStartX)
			if pi.StartX == pj.StartX {
				j--
			}
			i--
		} else {
			newStartX = pj.StartX
			newStartY = pj.StartY + pi.Eval(newStartX)
			j--
		}

		// Prepend: result is being built back-to-front, so append then
		// reverse at the end rather than repeatedly shifting a slice.
		result = append(result, Piece{StartX: newStartX, StartY: newStartY, Slope: newSlope})
	}

	// result is currently ordered by descending StartX; reverse in place.
	for a, b := 0, len(result)-1; a < b; a, b = a+1, b-1 {
		result[a], result[b] = result[b], result[a]
	}

	if len(result) > 0 && result[0].StartX > 0 {
		result[0].StartY = result[0].StartY - result[0].Slope*result[0].StartX
		result[0].StartX = 0
	}

	return Plef{pieces: result}
}

// Infimum mutates f into min(f, P) for the affine candidate piece P
// (implicitly anchored so P.Eval is valid everywhere), and returns the
// apparition scale: the smallest λ >= 0 at which P becomes optimal
// (i.e. P lies at or below f). Returns +Inf if P never wins (f stays
// unchanged).
//
// Because f is concave and P is affine, min(f, P) is concave and
// differs from f only in a suffix of pieces: Infimum pops pieces fully
// dominated by P from the tail, then truncates the first
// non-dominated piece at the intersection abscissa ξ.
func (f *Plef) Infimum(p Piece) float64 {
	if len(f.pieces) == 0 {
		// An empty Plef represents "no constraint yet"; P wins everywhere.
		f.pieces = []Piece{p}
		return p.StartX
	}

	last := f.pieces[len(f.pieces)-1]

	if p.Slope == last.Slope {
		y := p.Eval(last.StartX)
		switch {
		case y > last.StartY:
			return math.Inf(1)
		case y == last.StartY:
			return last.StartX
		default:
			f.pieces = f.pieces[:len(f.pieces)-1]
		}
	}

	xi := 0.0
	for i := len(f.pieces) - 1; i >= 0; i-- {
		piece := f.pieces[i]
		xi = (p.StartX*p.Slope - piece.StartX*piece.Slope - (p.StartY - piece.StartY)) / (p.Slope - piece.Slope)
		if xi > piece.StartX {
			break
		}
		f.pieces = f.pieces[:i]
	}
	if len(f.pieces) == 0 {
		// P dominates every piece: the result is P alone, anchored at 0.
		xi = 0
	}

	f.pieces = append(f.pieces, Piece{StartX: xi, StartY: p.Eval(xi), Slope: p.Slope})

	return xi
}
