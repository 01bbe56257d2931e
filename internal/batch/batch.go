// SPDX-License-Identifier: MIT

// Package batch aligns one query against many targets in parallel.
//
// Each alignment owns its matrix, so targets are independent and run on a
// bounded errgroup. Results keep the input order.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/internal/logging"
	"github.com/katalvlaran/seqalign/internal/seqio"
)

// Mode selects the aligner used per target.
type Mode string

// Supported modes.
const (
	Global Mode = "global"
	Local  Mode = "local"
)

// ErrUnknownMode is returned for a Mode other than Global or Local.
var ErrUnknownMode = errors.New("batch: unknown mode")

// Job describes one batch run.
type Job struct {
	Query   seqio.Record
	Targets []seqio.Record
	Mode    Mode
	Scores  align.Scores
	// Workers bounds concurrency; ≤ 0 means runtime.GOMAXPROCS(0).
	Workers int
	Logger  *slog.Logger
}

// Result is the outcome for one target. For local mode Alignments holds every
// co-optimal result and Found mirrors align.Local.Found.
type Result struct {
	TargetID   string
	Score      float64
	Found      bool
	Alignments []align.Alignment
}

// Run aligns job.Query (left) against every target (top).
// The first error cancels the remaining work. Cancellation is checked between
// alignments; a running alignment always completes.
func Run(ctx context.Context, job Job) ([]Result, error) {
	if job.Mode != Global && job.Mode != Local {
		return nil, fmt.Errorf("Run: mode %q: %w", job.Mode, ErrUnknownMode)
	}
	workers := job.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := job.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	results := make([]Result, len(job.Targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, target := range job.Targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := alignOne(job, target, logger)
			if err != nil {
				return fmt.Errorf("target %s: %w", target.ID, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// alignOne runs a single query/target alignment.
func alignOne(job Job, target seqio.Record, logger *slog.Logger) (Result, error) {
	opts := []align.Option{align.WithScores(job.Scores), align.WithLogger(logger.With("target", target.ID))}
	if job.Mode == Global {
		g, err := align.NewGlobal(job.Query.Seq, target.Seq, opts...)
		if err != nil {
			return Result{}, err
		}

		return Result{
			TargetID:   target.ID,
			Score:      g.Score(),
			Found:      true,
			Alignments: []align.Alignment{g.Alignment()},
		}, nil
	}

	l, err := align.NewLocal(job.Query.Seq, target.Seq, opts...)
	if err != nil {
		return Result{}, err
	}

	return Result{
		TargetID:   target.ID,
		Score:      l.BestScore(),
		Found:      l.Found(),
		Alignments: l.Alignments(),
	}, nil
}
