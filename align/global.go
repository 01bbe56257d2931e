// SPDX-License-Identifier: MIT
// Package: seqalign/align
//
// global.go: Needleman–Wunsch with affine gaps.

package align

import (
	"io"
)

// Global is a finished global alignment of two sequences.
// The matrix and the single traceback are computed by NewGlobal.
type Global struct {
	left, top Sequence
	scores    Scores
	matrix    *ScoreMatrix
	result    Alignment
}

// NewGlobal aligns left against top end-to-end.
//
// Stage 1 (Validate): nil sequences or non-finite scores → ErrInvalidInput.
// Stage 2 (Fill): row 0 and column 0 are gap chains from (0,0); interior
// cells follow the shared recurrence.
// Stage 3 (Traceback): one deterministic path from the bottom-right cell.
//
// Complexity: O(n·m) time and memory.
func NewGlobal(left, top Sequence, opts ...Option) (*Global, error) {
	cfg := newConfig(opts...)
	if err := validateInputs("NewGlobal", left, top, cfg.scores); err != nil {
		return nil, err
	}

	rc := recurrence{left: left, top: top, scores: cfg.scores}
	m := rc.build(nil)
	end := Coord{Row: m.rows - 1, Col: m.cols - 1}
	g := &Global{
		left:   left,
		top:    top,
		scores: cfg.scores,
		matrix: m,
		result: traceback(m, left, top, end),
	}
	cfg.logger.Debug("score matrix built",
		"mode", "global",
		"rows", m.rows,
		"cols", m.cols,
		"score", g.result.Score,
	)

	return g, nil
}

// ScoreTable returns the filled matrix. Callers must treat it as read-only.
func (g *Global) ScoreTable() *ScoreMatrix { return g.matrix }

// Scores returns the scoring parameters the matrix was built with.
func (g *Global) Scores() Scores { return g.scores }

// Score returns the score of the bottom-right cell.
func (g *Global) Score() float64 { return g.result.Score }

// Alignment returns a copy of the aligned pair.
func (g *Global) Alignment() Alignment { return g.result.clone() }

// Display writes the three-line rendering of the alignment to w.
func (g *Global) Display(w io.Writer) error {
	return WriteAlignments(w, []Alignment{g.result})
}
