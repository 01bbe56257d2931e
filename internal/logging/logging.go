// SPDX-License-Identifier: MIT

// Package logging builds the structured logger used by the seqalign CLI.
//
// Records go to stderr by default (stdout carries alignments). The handler is
// text unless JSON is requested:
//
//	logger, err := logging.New(logging.Config{Level: "debug", Output: os.Stderr})
//	logger.Info("aligning", "mode", "global", "left_len", 7)
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnknownLevel is returned for a level name other than debug, info, warn
// or error.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Config selects the destination, minimum level and format.
type Config struct {
	// Level is one of "debug", "info", "warn", "error"; empty means "info".
	Level string
	// JSON switches to slog.JSONHandler.
	JSON bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// ParseLevel maps a case-insensitive level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("ParseLevel(%q): %w", name, ErrUnknownLevel)
}

// New returns a logger for cfg tagged with service=seqalign.
func New(cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	return slog.New(h).With("service", "seqalign"), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
