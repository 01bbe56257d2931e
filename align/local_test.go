// SPDX-License-Identifier: MIT
package align_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/bioseq"
)

// TestLocal_WorkedExample checks both co-optimal cells and their alignments.
func TestLocal_WorkedExample(t *testing.T) {
	l, err := align.NewLocal(bioseq.New(exampleLeft), bioseq.New(exampleTop))
	require.NoError(t, err)

	assert.True(t, l.Found())
	assert.Equal(t, 5.0, l.BestScore())

	cells := l.MaxCells()
	require.Len(t, cells, 2)
	assert.Equal(t, align.Coord{Row: 3, Col: 4}, cells[0].Coord(), "row-major order")
	assert.Equal(t, align.Coord{Row: 6, Col: 5}, cells[1].Coord())
	for _, c := range cells {
		assert.Equal(t, l.BestScore(), c.Score())
	}

	core := l.CoreAlignments()
	require.Len(t, core, 2)
	assert.Equal(t, "G-AT", string(core[0].Left))
	assert.Equal(t, "GCAT", string(core[0].Top))
	assert.Equal(t, align.Coord{Row: 0, Col: 0}, core[0].Start)
	assert.Equal(t, "G-ATTAG", string(core[1].Left))
	assert.Equal(t, "GCA-T-G", string(core[1].Top))

	full := l.Alignments()
	require.Len(t, full, 2)
	assert.Equal(t, "G-ATTAGA", string(full[0].Left))
	assert.Equal(t, "GCATGCT-", string(full[0].Top))
	assert.Equal(t, "G-ATTAGA-", string(full[1].Left))
	assert.Equal(t, "GCA-T-GCT", string(full[1].Top))
	for _, a := range full {
		assert.Equal(t, 5.0, a.Score)
	}
}

// TestLocal_ExtensionPadsPrefixAndSuffix checks right-justified prefixes and
// left-justified suffixes around the core.
func TestLocal_ExtensionPadsPrefixAndSuffix(t *testing.T) {
	l, err := align.NewLocal(bioseq.New("CCCACGTAAAAA"), bioseq.New("ACGTG"))
	require.NoError(t, err)

	core := l.CoreAlignments()
	require.Len(t, core, 1)
	assert.Equal(t, "ACGT", string(core[0].Left))
	assert.Equal(t, align.Coord{Row: 3, Col: 0}, core[0].Start)
	assert.Equal(t, align.Coord{Row: 7, Col: 4}, core[0].End)

	full := l.Alignments()
	require.Len(t, full, 1)
	assert.Equal(t, "CCCACGTAAAAA", string(full[0].Left))
	assert.Equal(t, "---ACGTG----", string(full[0].Top))

	// Both prefixes and suffixes non-empty.
	l, err = align.NewLocal(bioseq.New("TTACGTTT"), bioseq.New("GGACGTGG"))
	require.NoError(t, err)
	full = l.Alignments()
	require.Len(t, full, 1)
	assert.Equal(t, "TTACGTTT", string(full[0].Left))
	assert.Equal(t, "GGACGTGG", string(full[0].Top))
	assert.Equal(t, 8.0, full[0].Score)
}

// TestLocal_ScoresNeverNegative checks the floor invariant on random inputs.
func TestLocal_ScoresNeverNegative(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		a, b := randomPair(t, seed, int(seed%12)+1, int(seed%9)+1)
		l, err := align.NewLocal(a, b, align.WithMismatch(-3), align.WithGapOpen(-4))
		require.NoError(t, err)

		forEachCell(t, l.ScoreTable(), func(c align.ScoreCell) {
			assert.GreaterOrEqual(t, c.Score(), 0.0, "seed %d cell %v", seed, c.Coord())
			if c.Row() == 0 || c.Column() == 0 {
				_, ok := c.Predecessor()
				assert.False(t, ok, "border cell %v must be a start cell", c.Coord())
			}
		})
		assert.GreaterOrEqual(t, l.BestScore(), 0.0)
	}
}

// TestLocal_ExtendedAlignmentsSpanInputs verifies every extended result
// reconstructs both inputs and all maximal cells share one score.
func TestLocal_ExtendedAlignmentsSpanInputs(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		a, b := randomPair(t, seed, int(seed%10)+2, int(seed%8)+2)
		l, err := align.NewLocal(a, b)
		require.NoError(t, err)

		for _, c := range l.MaxCells() {
			assert.Equal(t, l.BestScore(), c.Score())
		}
		for _, al := range l.Alignments() {
			require.Equal(t, len(al.Left), len(al.Top))
			assert.Equal(t, a.String(), stripGaps(al.Left), "seed %d", seed)
			assert.Equal(t, b.String(), stripGaps(al.Top), "seed %d", seed)
		}
	}
}

// TestLocal_NoAlignment covers all-mismatch inputs: the matrix is all zero,
// (0,0) and every interior cell are maximal and Found is false.
func TestLocal_NoAlignment(t *testing.T) {
	l, err := align.NewLocal(bioseq.New("AA"), bioseq.New("TT"))
	require.NoError(t, err)

	assert.False(t, l.Found())
	assert.Equal(t, 0.0, l.BestScore())
	cells := l.MaxCells()
	require.Len(t, cells, 5)
	assert.Equal(t, align.Coord{Row: 0, Col: 0}, cells[0].Coord())
	for _, c := range cells[1:] {
		assert.Positive(t, c.Row(), "border cell %v must not be maximal", c.Coord())
		assert.Positive(t, c.Column(), "border cell %v must not be maximal", c.Coord())
	}
}

// TestLocal_EmptyInputs degenerates to the origin cell without errors.
func TestLocal_EmptyInputs(t *testing.T) {
	l, err := align.NewLocal(bioseq.New(""), bioseq.New(""))
	require.NoError(t, err)
	assert.False(t, l.Found())
	require.Len(t, l.MaxCells(), 1)
	assert.Equal(t, align.Coord{}, l.MaxCells()[0].Coord())

	as := l.Alignments()
	require.Len(t, as, 1)
	assert.Empty(t, as[0].Left)
	assert.Empty(t, as[0].Top)

	for _, pair := range [][2]string{{"", "ACG"}, {"ACGT", ""}} {
		l, err = align.NewLocal(bioseq.New(pair[0]), bioseq.New(pair[1]))
		require.NoError(t, err)
		assert.False(t, l.Found())
		require.Len(t, l.MaxCells(), 1, "%q/%q", pair[0], pair[1])
		assert.Equal(t, align.Coord{}, l.MaxCells()[0].Coord())
	}

	l, err = align.NewLocal(bioseq.New(""), bioseq.New("ACG"))
	require.NoError(t, err)
	as = l.Alignments()
	require.Len(t, as, 1)
	assert.Equal(t, "---", string(as[0].Left))
	assert.Equal(t, "ACG", string(as[0].Top))

	var buf bytes.Buffer
	require.NoError(t, l.Display(&buf))
	assert.Equal(t, "ACG\n   \n---\n", buf.String(), "a single block")
}

// TestLocal_InvalidInput mirrors the global validation.
func TestLocal_InvalidInput(t *testing.T) {
	_, err := align.NewLocal(nil, bioseq.New("A"))
	assert.ErrorIs(t, err, align.ErrInvalidInput)

	_, err = align.NewLocal(bioseq.New("A"), bioseq.New("A"), align.WithGapOpen(math.Inf(1)))
	assert.ErrorIs(t, err, align.ErrInvalidInput)
}

// TestLocal_Idempotent rebuilds and compares matrices and result order.
func TestLocal_Idempotent(t *testing.T) {
	a, b := randomPair(t, 5, 30, 22)

	first, err := align.NewLocal(a, b)
	require.NoError(t, err)
	second, err := align.NewLocal(a, b)
	require.NoError(t, err)

	assert.True(t, first.ScoreTable().Equal(second.ScoreTable()))
	assert.Equal(t, first.MaxCells(), second.MaxCells())
	assert.Equal(t, first.Alignments(), second.Alignments())
}
