// SPDX-License-Identifier: MIT
// Package: seqalign/align
//
// local.go: Smith–Waterman with affine gaps and every co-optimal traceback.

package align

import (
	"io"
)

// Local is a finished local alignment of two sequences.
//
// Besides the matrix it keeps, in row-major fill order, every cell that holds
// the global maximum score. Each of them yields one alignment.
type Local struct {
	left, top Sequence
	scores    Scores
	matrix    *ScoreMatrix
	best      float64
	maxCells  []Coord
}

// NewLocal aligns the best-scoring regions of left and top.
//
// Border cells and any cell whose score would be negative are set to 0 with
// no predecessor. While filling, a cell above the running maximum resets the
// maximal set and a cell equal to it is appended.
//
// Only (0,0) and interior cells compete for the maximum. If the whole matrix
// is zero the maximal set is (0,0) followed by every zero interior cell, and
// Found reports false; an empty input leaves just (0,0).
//
// Complexity: O(n·m) time and memory.
func NewLocal(left, top Sequence, opts ...Option) (*Local, error) {
	cfg := newConfig(opts...)
	if err := validateInputs("NewLocal", left, top, cfg.scores); err != nil {
		return nil, err
	}

	l := &Local{left: left, top: top, scores: cfg.scores}
	rc := recurrence{left: left, top: top, scores: cfg.scores, local: true}
	l.matrix = rc.build(l.track)
	cfg.logger.Debug("score matrix built",
		"mode", "local",
		"rows", l.matrix.rows,
		"cols", l.matrix.cols,
		"score", l.best,
		"optima", len(l.maxCells),
	)

	return l, nil
}

// track maintains the ordered maximal-score set during the fill.
// Border cells other than (0,0) are forced start cells and never enter the set.
func (l *Local) track(c ScoreCell) {
	if (c.row == 0) != (c.col == 0) {
		return
	}
	switch {
	case len(l.maxCells) == 0 || c.score > l.best:
		l.best = c.score
		l.maxCells = append(l.maxCells[:0], c.Coord())
	case c.score == l.best:
		l.maxCells = append(l.maxCells, c.Coord())
	}
}

// ScoreTable returns the filled matrix. Callers must treat it as read-only.
func (l *Local) ScoreTable() *ScoreMatrix { return l.matrix }

// Scores returns the scoring parameters the matrix was built with.
func (l *Local) Scores() Scores { return l.scores }

// BestScore returns the maximum cell score (≥ 0).
func (l *Local) BestScore() float64 { return l.best }

// Found reports whether any positive-scoring local alignment exists.
func (l *Local) Found() bool { return l.best > 0 }

// MaxCells returns the cells holding BestScore in row-major order.
func (l *Local) MaxCells() []ScoreCell {
	out := make([]ScoreCell, len(l.maxCells))
	for i, p := range l.maxCells {
		out[i] = l.matrix.cell(p.Row, p.Col)
	}

	return out
}

// CoreAlignments returns, per maximal cell, only the locally aligned region.
func (l *Local) CoreAlignments() []Alignment {
	out := make([]Alignment, len(l.maxCells))
	for i, p := range l.maxCells {
		out[i] = traceback(l.matrix, l.left, l.top, p)
	}

	return out
}

// Alignments returns, per maximal cell, the local alignment extended with the
// unaligned prefixes and suffixes so that both rows span the full inputs.
func (l *Local) Alignments() []Alignment {
	cores := l.CoreAlignments()
	for i := range cores {
		cores[i] = extend(cores[i], l.left, l.top)
	}

	return cores
}

// Display writes the three-line rendering of every extended alignment,
// separated by blank lines.
func (l *Local) Display(w io.Writer) error {
	return WriteAlignments(w, l.Alignments())
}
