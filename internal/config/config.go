// SPDX-License-Identifier: MIT

// Package config loads seqalign scoring profiles from YAML.
//
// Example profile:
//
//	mode: local
//	format: text
//	scores:
//	  match: 2
//	  mismatch: -1
//	  gap_open: -2
//	  gap_extend: -1
//
// Missing score fields keep their defaults; unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqalign/align"
)

// Modes and formats accepted in a profile.
const (
	ModeGlobal = "global"
	ModeLocal  = "local"

	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidConfig wraps every profile parse or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Scores mirrors align.Scores with YAML keys.
type Scores struct {
	Match     float64 `yaml:"match"`
	Mismatch  float64 `yaml:"mismatch"`
	GapOpen   float64 `yaml:"gap_open"`
	GapExtend float64 `yaml:"gap_extend"`
}

// Config is a scoring profile.
type Config struct {
	Mode   string `yaml:"mode"`
	Format string `yaml:"format"`
	Scores Scores `yaml:"scores"`
}

// Default returns the global/text profile with align's default scores.
func Default() Config {
	d := align.DefaultScores()

	return Config{
		Mode:   ModeGlobal,
		Format: FormatText,
		Scores: Scores{
			Match:     d.Match,
			Mismatch:  d.Mismatch,
			GapOpen:   d.GapOpen,
			GapExtend: d.GapExtend,
		},
	}
}

// AlignScores converts the profile scores for the align package.
func (c Config) AlignScores() align.Scores {
	return align.Scores{
		Match:     c.Scores.Match,
		Mismatch:  c.Scores.Mismatch,
		GapOpen:   c.Scores.GapOpen,
		GapExtend: c.Scores.GapExtend,
	}
}

// Validate checks mode, format and scores.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeGlobal, ModeLocal:
	default:
		return fmt.Errorf("mode %q: %w", c.Mode, ErrInvalidConfig)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalidConfig)
	}
	if err := c.AlignScores().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Decode reads a profile from r on top of Default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and validates the profile at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
