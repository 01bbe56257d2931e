// SPDX-License-Identifier: MIT
// Package: seqalign/align
//
// display.go: three-line text rendering:
//
//	GCA-T-GCT   top
//	| | | |     '|' where both rows hold the same byte
//	G-ATTAG-A   left

package align

import (
	"io"
	"strconv"
	"strings"
)

// MatchMark and BlankMark fill the middle line of a rendering.
const (
	MatchMark byte = '|'
	BlankMark byte = ' '
)

// Markers returns the middle line: MatchMark where Left[i] == Top[i].
func (a Alignment) Markers() []byte {
	out := make([]byte, len(a.Left))
	for i := range a.Left {
		if a.Left[i] == a.Top[i] {
			out[i] = MatchMark
		} else {
			out[i] = BlankMark
		}
	}

	return out
}

// Matches counts identical columns.
func (a Alignment) Matches() int {
	n := 0
	for i := range a.Left {
		if a.Left[i] == a.Top[i] {
			n++
		}
	}

	return n
}

// Gaps counts columns where either row holds Gap.
func (a Alignment) Gaps() int {
	n := 0
	for i := range a.Left {
		if a.Left[i] == Gap || a.Top[i] == Gap {
			n++
		}
	}

	return n
}

// Render returns "top\nmarkers\nleft" without a trailing newline.
func (a Alignment) Render() string {
	var sb strings.Builder
	sb.Grow(3*len(a.Left) + 2)
	sb.Write(a.Top)
	sb.WriteByte('\n')
	sb.Write(a.Markers())
	sb.WriteByte('\n')
	sb.Write(a.Left)

	return sb.String()
}

// WriteAlignments writes each rendering followed by a newline, with a blank
// line between consecutive alignments.
func WriteAlignments(w io.Writer, as []Alignment) error {
	for i, a := range as {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, a.Render()+"\n"); err != nil {
			return err
		}
	}

	return nil
}

// formatScore prints a score in the shortest exact form ("3", "-1.5").
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
