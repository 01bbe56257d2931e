// SPDX-License-Identifier: MIT
// Package: seqalign/align
//
// types.go: value types shared by the aligners: Sequence, Coord, Move,
// ScoreCell and Alignment.

package align

import (
	"fmt"
	"strconv"
)

// Gap is the byte emitted on the side of an alignment that does not consume
// a character.
const Gap byte = '-'

// Sequence is the only capability the engine needs from a biological sequence:
// its length and 0-based byte access. bioseq.Seq satisfies it.
// A nil interface or nil pointer is rejected with ErrInvalidInput.
type Sequence interface {
	Len() int
	At(i int) byte
}

// Coord addresses a cell of a ScoreMatrix.
type Coord struct {
	Row int
	Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return "(" + strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col) + ")"
}

// Move classifies a single traceback step from a cell to its predecessor.
type Move uint8

const (
	// MoveNone marks a start cell (no predecessor).
	MoveNone Move = iota
	// MoveDiagonal consumes one character from each sequence.
	MoveDiagonal
	// MoveVertical consumes a character of the left sequence against a gap.
	MoveVertical
	// MoveHorizontal consumes a character of the top sequence against a gap.
	MoveHorizontal
)

// String returns an arrow for the move, handy when dumping matrices.
func (m Move) String() string {
	switch m {
	case MoveDiagonal:
		return "↖"
	case MoveVertical:
		return "↑"
	case MoveHorizontal:
		return "←"
	case MoveNone:
		return "×"
	}

	return "?"
}

// classify returns the move leading from cell `to` back to its predecessor `from`.
// Any displacement other than a unit step on one or both axes is MoveNone.
func classify(to, from Coord) Move {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	switch {
	case dr == 1 && dc == 1:
		return MoveDiagonal
	case dr == 1 && dc == 0:
		return MoveVertical
	case dr == 0 && dc == 1:
		return MoveHorizontal
	}

	return MoveNone
}

// ScoreCell is one entry of the score matrix: a score, its position and an
// optional backlink to the neighbour that produced the score.
//
// Backlinks are stored as matrix coordinates, never pointers, so a cell is a
// plain value and the matrix is the single owner of all cells.
// A ScoreCell is never modified after it has been placed in a matrix;
// WithPredecessor returns a new value.
type ScoreCell struct {
	score  float64
	row    int
	col    int
	prev   Coord
	linked bool
}

// NewScoreCell returns a cell without a predecessor.
func NewScoreCell(score float64, row, col int) ScoreCell {
	return ScoreCell{score: score, row: row, col: col}
}

// Score returns the cell score.
func (c ScoreCell) Score() float64 { return c.score }

// Row returns the cell row (index into the left sequence plus one).
func (c ScoreCell) Row() int { return c.row }

// Column returns the cell column (index into the top sequence plus one).
func (c ScoreCell) Column() int { return c.col }

// Coord returns the cell position.
func (c ScoreCell) Coord() Coord { return Coord{Row: c.row, Col: c.col} }

// Predecessor returns the backlink and whether the cell has one.
// Cells without a predecessor are alignment starting points.
func (c ScoreCell) Predecessor() (Coord, bool) {
	return c.prev, c.linked
}

// WithPredecessor returns a copy of c linked to p.
// Used only while the matrix is being filled.
func (c ScoreCell) WithPredecessor(p Coord) ScoreCell {
	c.prev, c.linked = p, true

	return c
}

// Move classifies the step from c back to its predecessor.
func (c ScoreCell) Move() Move {
	if !c.linked {
		return MoveNone
	}

	return classify(c.Coord(), c.prev)
}

// String renders "(score, prevRow, prevCol)" or "(score, -, -)" for start cells.
func (c ScoreCell) String() string {
	if !c.linked {
		return fmt.Sprintf("(%g, -, -)", c.score)
	}

	return fmt.Sprintf("(%g, %d, %d)", c.score, c.prev.Row, c.prev.Col)
}

// Alignment is one aligned pair. Left and Top always have equal length and
// Gap marks positions where a sequence did not consume a character.
//
// Start and End are the matrix cells where the DP path begins (no predecessor)
// and ends; Score is the score of End.
type Alignment struct {
	Left  []byte
	Top   []byte
	Score float64
	Start Coord
	End   Coord
}

// Len returns the number of alignment columns.
func (a Alignment) Len() int { return len(a.Left) }

// clone returns a deep copy so callers cannot mutate cached results.
func (a Alignment) clone() Alignment {
	a.Left = append([]byte(nil), a.Left...)
	a.Top = append([]byte(nil), a.Top...)

	return a
}
