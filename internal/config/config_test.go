// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, config.ModeGlobal, cfg.Mode)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, align.DefaultScores(), cfg.AlignScores())
	assert.NoError(t, cfg.Validate())
}

// TestDecode_EmptyKeepsDefaults accepts an empty document.
func TestDecode_EmptyKeepsDefaults(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

// TestDecode_PartialOverride changes only the listed keys.
func TestDecode_PartialOverride(t *testing.T) {
	doc := "mode: local\nscores:\n  match: 3\n  gap_open: -5\n"
	cfg, err := config.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, config.ModeLocal, cfg.Mode)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, align.Scores{
		Match:     3,
		Mismatch:  align.DefaultMismatch,
		GapOpen:   -5,
		GapExtend: align.DefaultGapExtend,
	}, cfg.AlignScores())
}

func TestDecode_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "modes: global\n",
		"unknown mode":   "mode: semi\n",
		"unknown format": "format: xml\n",
		"bad score":      "scores:\n  match: .nan\n",
		"bad yaml":       "mode: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

// TestLoad_RoundTrip writes a profile with Marshal and loads it back.
func TestLoad_RoundTrip(t *testing.T) {
	want := config.Default()
	want.Mode = config.ModeLocal
	want.Format = config.FormatJSON
	want.Scores.Mismatch = -3

	data, err := config.Marshal(want)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
