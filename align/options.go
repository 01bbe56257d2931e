// SPDX-License-Identifier: MIT
// Package: seqalign/align
//
// options.go: scoring parameters and functional options.
//
// Contract:
//   • Option is func(*config); options apply in order, last one wins.
//   • Score values are validated by the constructors (NaN/±Inf → ErrInvalidInput),
//     not by the WithX helpers.
//   • WithLogger panics on nil: that is a programmer error.

package align

import (
	"io"
	"log/slog"
	"math"
	"reflect"
)

// Default scores (match, mismatch, gap open, gap extend).
const (
	DefaultMatch     = 2.0
	DefaultMismatch  = -1.0
	DefaultGapOpen   = -2.0
	DefaultGapExtend = -1.0
)

// Scores holds the four scalar scoring parameters.
// Rewards are positive, penalties negative; nothing else is enforced.
type Scores struct {
	Match     float64 `json:"match"`
	Mismatch  float64 `json:"mismatch"`
	GapOpen   float64 `json:"gap_open"`
	GapExtend float64 `json:"gap_extend"`
}

// DefaultScores returns {+2, -1, -2, -1}.
func DefaultScores() Scores {
	return Scores{
		Match:     DefaultMatch,
		Mismatch:  DefaultMismatch,
		GapOpen:   DefaultGapOpen,
		GapExtend: DefaultGapExtend,
	}
}

// Validate reports ErrInvalidInput for any NaN or ±Inf parameter.
func (s Scores) Validate() error {
	named := [...]struct {
		name string
		v    float64
	}{
		{"match", s.Match},
		{"mismatch", s.Mismatch},
		{"gap open", s.GapOpen},
		{"gap extend", s.GapExtend},
	}
	for _, p := range named {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) {
			return alignErrorf("Scores.Validate", "%s score %v", ErrInvalidInput, p.name, p.v)
		}
	}

	return nil
}

// Option customizes an aligner before its matrix is built.
type Option func(*config)

// config is the resolved option set; passed by value after construction.
type config struct {
	scores Scores
	logger *slog.Logger
}

// WithScores replaces all four scoring parameters at once.
func WithScores(s Scores) Option {
	return func(c *config) { c.scores = s }
}

// WithMatch sets the reward for identical characters.
func WithMatch(v float64) Option {
	return func(c *config) { c.scores.Match = v }
}

// WithMismatch sets the score for differing characters.
func WithMismatch(v float64) Option {
	return func(c *config) { c.scores.Mismatch = v }
}

// WithGapOpen sets the score charged when a gap is opened.
func WithGapOpen(v float64) Option {
	return func(c *config) { c.scores.GapOpen = v }
}

// WithGapExtend sets the score charged when a gap is extended.
func WithGapExtend(v float64) Option {
	return func(c *config) { c.scores.GapExtend = v }
}

// WithLogger routes the aligner's debug records to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("align: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// newConfig starts from the defaults and applies opts in order.
func newConfig(opts ...Option) config {
	cfg := config{
		scores: DefaultScores(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validateInputs runs the shared constructor checks in a fixed order:
// left sequence, top sequence, scores.
func validateInputs(method string, left, top Sequence, s Scores) error {
	if isNil(left) {
		return alignErrorf(method, "left sequence is nil", ErrInvalidInput)
	}
	if isNil(top) {
		return alignErrorf(method, "top sequence is nil", ErrInvalidInput)
	}
	if err := s.Validate(); err != nil {
		return alignErrorf(method, "scores", err)
	}

	return nil
}

// isNil reports a nil interface or a nil pointer stored in one.
func isNil(s Sequence) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
