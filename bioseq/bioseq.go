// SPDX-License-Identifier: MIT
// Package: seqalign/bioseq
//
// bioseq.go: the immutable Seq value type.

package bioseq

import (
	"strings"
)

// Seq is an immutable, upper-cased biological sequence (DNA, RNA or protein).
// The zero value is the empty sequence. Every method that "changes" a Seq
// returns a new one.
type Seq struct {
	data string
}

// New returns s upper-cased as a Seq.
func New(s string) Seq {
	return Seq{data: strings.ToUpper(s)}
}

// FromBytes is New for a byte slice; b is copied.
func FromBytes(b []byte) Seq {
	return New(string(b))
}

// Len returns the number of residues.
func (s Seq) Len() int { return len(s.data) }

// At returns the residue at 0-based index i. It panics when i is out of
// range, like slice indexing.
func (s Seq) At(i int) byte { return s.data[i] }

// String returns the residues as text.
func (s Seq) String() string { return s.data }

// Bytes returns a fresh copy of the residues.
func (s Seq) Bytes() []byte { return []byte(s.data) }

// Equal reports whether both sequences hold the same residues.
func (s Seq) Equal(other Seq) bool { return s.data == other.data }

// Concat returns s followed by other.
func (s Seq) Concat(other Seq) Seq {
	return Seq{data: s.data + other.data}
}

// Append returns s followed by the upper-cased text t.
func (s Seq) Append(t string) Seq {
	return Seq{data: s.data + strings.ToUpper(t)}
}

// Prepend returns the upper-cased text t followed by s.
func (s Seq) Prepend(t string) Seq {
	return Seq{data: strings.ToUpper(t) + s.data}
}

// Repeat returns s repeated n times. n < 0 → ErrNegativeRepeat.
func (s Seq) Repeat(n int) (Seq, error) {
	if n < 0 {
		return Seq{}, seqErrorf("Repeat", "n=%d", ErrNegativeRepeat, n)
	}

	return Seq{data: strings.Repeat(s.data, n)}, nil
}

// Slice returns residues [i, j). Bounds outside [0, Len] or i > j →
// ErrOutOfRange. Negative indices are not interpreted from the end.
func (s Seq) Slice(i, j int) (Seq, error) {
	if i < 0 || j > len(s.data) || i > j {
		return Seq{}, seqErrorf("Slice", "[%d:%d] of %d", ErrOutOfRange, i, j, len(s.data))
	}

	return Seq{data: s.data[i:j]}, nil
}

// Contains reports whether sub (case-insensitive) occurs in s.
func (s Seq) Contains(sub string) bool {
	return strings.Contains(s.data, strings.ToUpper(sub))
}

// Count returns the number of non-overlapping occurrences of sub
// (case-insensitive). An empty sub counts Len()+1 positions, as strings.Count.
func (s Seq) Count(sub string) int {
	return strings.Count(s.data, strings.ToUpper(sub))
}

// Reverse returns the residues in reverse order.
func (s Seq) Reverse() Seq {
	b := []byte(s.data)
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}

	return Seq{data: string(b)}
}
