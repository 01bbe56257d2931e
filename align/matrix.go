// SPDX-License-Identifier: MIT
// Package: seqalign/align
//
// matrix.go: ScoreMatrix, the dense cell arena shared by every aligner.
//
// Layout:
//   • rows = len(left)+1, cols = len(top)+1, never zero.
//   • cells are stored row-major in one flat slice.
//   • backlinks are Coord values resolved against the same arena, so the
//     predecessor graph can only reference cells owned by this matrix.

package align

import (
	"strings"
)

// ScoreMatrix is the (len(left)+1)×(len(top)+1) grid of ScoreCell values.
// It is read-only once returned by an aligner.
type ScoreMatrix struct {
	rows, cols int
	cells      []ScoreCell
}

// newScoreMatrix allocates a rows×cols arena. Dimensions come from sequence
// lengths plus one, so they are always ≥ 1.
// Complexity: O(rows·cols) time and memory.
func newScoreMatrix(rows, cols int) *ScoreMatrix {
	return &ScoreMatrix{
		rows:  rows,
		cols:  cols,
		cells: make([]ScoreCell, rows*cols),
	}
}

// Rows returns the number of rows (len(left)+1).
func (m *ScoreMatrix) Rows() int { return m.rows }

// Cols returns the number of columns (len(top)+1).
func (m *ScoreMatrix) Cols() int { return m.cols }

// At returns the cell at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *ScoreMatrix) At(row, col int) (ScoreCell, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return ScoreCell{}, alignErrorf("ScoreMatrix.At", "(%d,%d) outside %dx%d", ErrOutOfRange, row, col, m.rows, m.cols)
	}

	return m.cells[row*m.cols+col], nil
}

// Predecessor resolves c's backlink. The boolean is false for start cells.
func (m *ScoreMatrix) Predecessor(c ScoreCell) (ScoreCell, bool) {
	p, ok := c.Predecessor()
	if !ok {
		return ScoreCell{}, false
	}

	return m.cell(p.Row, p.Col), true
}

// Equal reports whether both matrices have the same shape and identical cells,
// backlinks included.
func (m *ScoreMatrix) Equal(other *ScoreMatrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// String renders one bracketed line per row with "score move" entries, e.g.
// "[0×, -2←, -4←]".
func (m *ScoreMatrix) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		sb.WriteByte('[')
		for c := 0; c < m.cols; c++ {
			cell := m.cell(r, c)
			sb.WriteString(formatScore(cell.score))
			sb.WriteString(cell.Move().String())
			if c < m.cols-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// cell is the unchecked accessor used by the aligners.
func (m *ScoreMatrix) cell(row, col int) ScoreCell {
	return m.cells[row*m.cols+col]
}

// put stores c at its own coordinates.
func (m *ScoreMatrix) put(c ScoreCell) {
	m.cells[c.row*m.cols+c.col] = c
}

// fill computes every cell in row-major order. build sees only cells that
// precede (row, col) in that order, which covers the top, left and top-left
// neighbours the recurrence depends on. visit, when non-nil, observes each
// cell right after it is stored.
// Complexity: O(rows·cols) calls to build.
func (m *ScoreMatrix) fill(build func(row, col int) ScoreCell, visit func(ScoreCell)) {
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			cell := build(r, c)
			m.put(cell)
			if visit != nil {
				visit(cell)
			}
		}
	}
}
