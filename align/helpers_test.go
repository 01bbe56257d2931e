// SPDX-License-Identifier: MIT
package align_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/bioseq"
)

// Worked example used across the package tests.
const (
	exampleLeft = "gattaga"
	exampleTop  = "gcatgct"
)

// stripGaps removes every align.Gap byte.
func stripGaps(b []byte) string {
	return string(bytes.ReplaceAll(b, []byte{align.Gap}, nil))
}

// randomPair returns two seeded DNA sequences of lengths n and m.
func randomPair(t testing.TB, seed int64, n, m int) (bioseq.Seq, bioseq.Seq) {
	t.Helper()
	a, err := bioseq.Random(n, bioseq.WithSeed(seed))
	require.NoError(t, err)
	b, err := bioseq.Random(m, bioseq.WithSeed(seed+7919))
	require.NoError(t, err)

	return a, b
}

// forEachCell visits every cell of m.
func forEachCell(t *testing.T, m *align.ScoreMatrix, fn func(align.ScoreCell)) {
	t.Helper()
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			cell, err := m.At(r, c)
			require.NoError(t, err)
			fn(cell)
		}
	}
}
