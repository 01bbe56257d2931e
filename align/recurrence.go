// SPDX-License-Identifier: MIT
// Package: seqalign/align
//
// recurrence.go: per-cell scoring shared by global and local alignment.
//
// For r,c ≥ 1:
//
//	diag = cell(r-1,c-1) + (match | mismatch)
//	up   = cell(r-1,c)   + gapCost(cell(r-1,c))
//	left = cell(r,c-1)   + gapCost(cell(r,c-1))
//
// Candidates are evaluated diag → up → left and replace the running best only
// on a strictly greater score, so ties resolve diagonal first, then up.
//
// Gap state is not tracked in separate lanes. It is read back from the
// candidate's own backlink: a candidate that was itself reached by a unit
// (gap) step, or that has no predecessor, is charged gapOpen; a candidate
// reached diagonally is charged gapExtend.

package align

// recurrence binds the inputs and scores for one matrix build.
type recurrence struct {
	left, top Sequence
	scores    Scores
	local     bool
}

// cell computes the ScoreCell for (r, c) from already filled neighbours.
func (rc recurrence) cell(m *ScoreMatrix, r, c int) ScoreCell {
	switch {
	case r == 0 && c == 0:
		return NewScoreCell(0, 0, 0)
	case rc.local && (r == 0 || c == 0):
		// Local alignment starts for free anywhere on the border.
		return NewScoreCell(0, r, c)
	case r == 0:
		return rc.step(m.cell(r, c-1), r, c)
	case c == 0:
		return rc.step(m.cell(r-1, c), r, c)
	}

	diag := m.cell(r-1, c-1)
	best := NewScoreCell(diag.score+rc.substitution(r-1, c-1), r, c).WithPredecessor(diag.Coord())

	if up := rc.step(m.cell(r-1, c), r, c); up.score > best.score {
		best = up
	}
	if left := rc.step(m.cell(r, c-1), r, c); left.score > best.score {
		best = left
	}

	// Free restart: a negative local score becomes a new starting point.
	if rc.local && best.score < 0 {
		return NewScoreCell(0, r, c)
	}

	return best
}

// step builds the gap move from `from` into (r, c).
func (rc recurrence) step(from ScoreCell, r, c int) ScoreCell {
	return NewScoreCell(from.score+rc.gapCost(from), r, c).WithPredecessor(from.Coord())
}

// substitution scores left[i] against top[j].
func (rc recurrence) substitution(i, j int) float64 {
	if rc.left.At(i) == rc.top.At(j) {
		return rc.scores.Match
	}

	return rc.scores.Mismatch
}

// gapCost returns the penalty for a gap step leaving candidate.
func (rc recurrence) gapCost(candidate ScoreCell) float64 {
	if isGapOpen(candidate) {
		return rc.scores.GapOpen
	}

	return rc.scores.GapExtend
}

// isGapOpen reports whether a gap step leaving candidate opens a new gap.
// True for start cells and for cells whose own backlink is a unit step
// (|Δrow|+|Δcol| == 1). The direction of the new step is not considered, so
// turning from a horizontal gap into a vertical one also opens.
func isGapOpen(candidate ScoreCell) bool {
	p, ok := candidate.Predecessor()
	if !ok {
		return true
	}

	return abs(candidate.row-p.Row)+abs(candidate.col-p.Col) == 1
}

// build allocates and fills a matrix for rc, calling visit for every cell.
func (rc recurrence) build(visit func(ScoreCell)) *ScoreMatrix {
	m := newScoreMatrix(rc.left.Len()+1, rc.top.Len()+1)
	m.fill(func(r, c int) ScoreCell { return rc.cell(m, r, c) }, visit)

	return m
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
