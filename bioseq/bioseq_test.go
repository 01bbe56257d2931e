// SPDX-License-Identifier: MIT
package bioseq_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/bioseq"
)

// TestSeq_Basics checks normalization and the read accessors.
func TestSeq_Basics(t *testing.T) {
	s := bioseq.New("acGt")
	assert.Equal(t, "ACGT", s.String())
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, byte('G'), s.At(2))
	assert.True(t, s.Equal(bioseq.FromBytes([]byte("ACGT"))))

	var zero bioseq.Seq
	assert.Equal(t, 0, zero.Len())
	assert.True(t, zero.Equal(bioseq.New("")))

	assert.Panics(t, func() { s.At(4) })
}

// TestSeq_BytesIsCopy ensures the returned slice does not alias the Seq.
func TestSeq_BytesIsCopy(t *testing.T) {
	s := bioseq.New("ACGT")
	b := s.Bytes()
	b[0] = 'X'
	assert.Equal(t, "ACGT", s.String())
}

// TestSeq_Composition covers Concat, Append, Prepend and Reverse.
func TestSeq_Composition(t *testing.T) {
	s := bioseq.New("acg")

	assert.Equal(t, "ACGTT", s.Concat(bioseq.New("tt")).String())
	assert.Equal(t, "ACGTT", s.Append("tt").String())
	assert.Equal(t, "TTACG", s.Prepend("tt").String())
	assert.Equal(t, "GCA", s.Reverse().String())
	assert.Equal(t, "ACG", s.String(), "receiver must stay unchanged")
	assert.Equal(t, "", bioseq.New("").Reverse().String())
}

// TestSeq_Repeat covers zero, positive and negative counts.
func TestSeq_Repeat(t *testing.T) {
	s := bioseq.New("ac")

	r, err := s.Repeat(3)
	require.NoError(t, err)
	assert.Equal(t, "ACACAC", r.String())

	r, err = s.Repeat(0)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())

	_, err = s.Repeat(-1)
	assert.ErrorIs(t, err, bioseq.ErrNegativeRepeat)
}

// TestSeq_Slice covers valid and invalid bounds.
func TestSeq_Slice(t *testing.T) {
	s := bioseq.New("ACGTAC")

	sub, err := s.Slice(1, 4)
	require.NoError(t, err)
	assert.Equal(t, "CGT", sub.String())

	sub, err = s.Slice(6, 6)
	require.NoError(t, err)
	assert.Equal(t, 0, sub.Len())

	for _, b := range [][2]int{{-1, 2}, {2, 7}, {4, 3}} {
		_, err = s.Slice(b[0], b[1])
		assert.ErrorIs(t, err, bioseq.ErrOutOfRange, "bounds %v", b)
	}
}

// TestSeq_Search covers case-insensitive Contains and Count.
func TestSeq_Search(t *testing.T) {
	s := bioseq.New("ACGTACGTA")

	assert.True(t, s.Contains("gta"))
	assert.False(t, s.Contains("TTT"))
	assert.Equal(t, 2, s.Count("acg"))
	assert.Equal(t, 0, s.Count("GG"))
}

// TestRandom_Deterministic checks seeding, alphabet and length.
func TestRandom_Deterministic(t *testing.T) {
	a, err := bioseq.Random(64)
	require.NoError(t, err)
	b, err := bioseq.Random(64)
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "default seed is fixed")

	c, err := bioseq.Random(64, bioseq.WithSeed(7))
	require.NoError(t, err)
	d, err := bioseq.Random(64, bioseq.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.True(t, c.Equal(d))

	for i := 0; i < a.Len(); i++ {
		assert.True(t, strings.IndexByte(bioseq.DNA, a.At(i)) >= 0)
	}

	p, err := bioseq.Random(32, bioseq.WithAlphabet("HP"))
	require.NoError(t, err)
	assert.Equal(t, 32, p.Len())
	assert.Empty(t, strings.Trim(p.String(), "HP"))

	z, err := bioseq.Random(0)
	require.NoError(t, err)
	assert.Equal(t, 0, z.Len())
}

// TestRandom_Errors covers the negative length and panicking options.
func TestRandom_Errors(t *testing.T) {
	_, err := bioseq.Random(-1)
	assert.ErrorIs(t, err, bioseq.ErrBadSize)

	assert.Panics(t, func() { bioseq.WithRand(nil) })
	assert.Panics(t, func() { bioseq.WithAlphabet("") })
}
