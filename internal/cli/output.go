// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/internal/config"
)

// report is one command result, shared by the text and JSON writers.
type report struct {
	Mode       string
	Target     string
	Score      float64
	Found      bool
	Scores     align.Scores
	Alignments []align.Alignment
}

// jsonAlignment is the wire form of an align.Alignment.
type jsonAlignment struct {
	Left    string  `json:"left"`
	Top     string  `json:"top"`
	Markers string  `json:"markers"`
	Score   float64 `json:"score"`
	Start   [2]int  `json:"start"`
	End     [2]int  `json:"end"`
	Matches int     `json:"matches"`
	Gaps    int     `json:"gaps"`
}

type jsonReport struct {
	Mode       string          `json:"mode"`
	Target     string          `json:"target,omitempty"`
	Score      float64         `json:"score"`
	Found      bool            `json:"found"`
	Scores     align.Scores    `json:"scores"`
	Alignments []jsonAlignment `json:"alignments"`
}

func (r report) toJSON() jsonReport {
	out := jsonReport{Mode: r.Mode, Target: r.Target, Score: r.Score, Found: r.Found, Scores: r.Scores}
	out.Alignments = make([]jsonAlignment, len(r.Alignments))
	for i, a := range r.Alignments {
		out.Alignments[i] = jsonAlignment{
			Left:    string(a.Left),
			Top:     string(a.Top),
			Markers: string(a.Markers()),
			Score:   a.Score,
			Start:   [2]int{a.Start.Row, a.Start.Col},
			End:     [2]int{a.End.Row, a.End.Col},
			Matches: a.Matches(),
			Gaps:    a.Gaps(),
		}
	}

	return out
}

// writeReport prints a single pairwise result.
func (o *options) writeReport(r report) error {
	if o.cfg.Format == config.FormatJSON {
		return writeJSON(o.stdout, r.toJSON())
	}

	return writeText(o.stdout, r)
}

// writeReports prints batch results: a JSON array, or text blocks headed by
// the target ID.
func (o *options) writeReports(rs []report) error {
	if o.cfg.Format == config.FormatJSON {
		out := make([]jsonReport, len(rs))
		for i, r := range rs {
			out[i] = r.toJSON()
		}

		return writeJSON(o.stdout, out)
	}
	for i, r := range rs {
		if i > 0 {
			if _, err := io.WriteString(o.stdout, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(o.stdout, "> %s score=%s\n", r.Target, formatFloat(r.Score)); err != nil {
			return err
		}
		if err := writeText(o.stdout, r); err != nil {
			return err
		}
	}

	return nil
}

// writeText renders alignments, or a notice when a local search found nothing.
func writeText(w io.Writer, r report) error {
	if !r.Found {
		_, err := io.WriteString(w, "no local alignment found\n")

		return err
	}

	return align.WriteAlignments(w, r.Alignments)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
