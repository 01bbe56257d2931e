// SPDX-License-Identifier: MIT
// Package: seqalign/align
//
// lcs.go: longest common subsequence on the same cell arena.
//
// For r,c ≥ 1 the diagonal candidate scores cell(r-1,c-1)+1 on a match and
// cell(r-1,c-1) otherwise; the top and left neighbours replace it only when
// strictly larger. Row 0 and column 0 are 0 with no predecessor.

package align

// LCS returns one longest common subsequence of left and top.
// Ties resolve diagonal → top → left, so the result is deterministic.
//
// Complexity: O(n·m) time and memory.
func LCS(left, top Sequence) ([]byte, error) {
	if isNil(left) || isNil(top) {
		return nil, alignErrorf("LCS", "nil sequence", ErrInvalidInput)
	}

	m := newScoreMatrix(left.Len()+1, top.Len()+1)
	m.fill(func(r, c int) ScoreCell {
		if r == 0 || c == 0 {
			return NewScoreCell(0, r, c)
		}
		diag := m.cell(r-1, c-1)
		score := diag.score
		if left.At(r-1) == top.At(c-1) {
			score++
		}
		best := NewScoreCell(score, r, c).WithPredecessor(diag.Coord())
		if up := m.cell(r-1, c); up.score > best.score {
			best = NewScoreCell(up.score, r, c).WithPredecessor(up.Coord())
		}
		if lf := m.cell(r, c-1); lf.score > best.score {
			best = NewScoreCell(lf.score, r, c).WithPredecessor(lf.Coord())
		}

		return best
	}, nil)

	// Only a matching diagonal step raises the score by one.
	var out []byte
	cur := m.cell(m.rows-1, m.cols-1)
	for {
		prev, ok := m.Predecessor(cur)
		if !ok {
			break
		}
		if cur.score == prev.score+1 {
			out = append(out, left.At(cur.row-1))
		}
		cur = prev
	}
	reverse(out)

	return out, nil
}
