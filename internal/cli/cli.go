// SPDX-License-Identifier: MIT

// Package cli wires the seqalign command tree.
//
//	seqalign global GATTAGA GCATGCT
//	seqalign local --left-fasta a.fa --top-fasta b.fa --format json
//	seqalign lcs GCGCAATG GCCCTAGCG
//	seqalign batch --query q.fa --targets db.fa.gz --mode local --workers 8
//
// Run is the testable entry point: it never calls os.Exit and writes only to
// the writers it is given.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/internal/config"
	"github.com/katalvlaran/seqalign/internal/logging"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// errUsage marks argument problems so Run can return ExitUsage.
var errUsage = errors.New("usage")

// options collects the persistent flags shared by every subcommand.
type options struct {
	configPath string
	format     string
	logLevel   string
	logJSON    bool
	scores     align.Scores

	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
	cfg    config.Config
}

// Run executes the command line args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "seqalign: %v\n", err)
		if errors.Is(err, errUsage) {
			return ExitUsage
		}

		return ExitFailure
	}

	return ExitOK
}

// newRootCmd builds a fresh command tree bound to its own options.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &options{stdout: stdout, stderr: stderr, scores: align.DefaultScores()}

	root := &cobra.Command{
		Use:           "seqalign",
		Short:         "Pairwise sequence alignment (Needleman–Wunsch, Smith–Waterman, LCS)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.resolve(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "YAML scoring profile")
	pf.StringVar(&o.format, "format", config.FormatText, "output format: text|json")
	pf.StringVar(&o.logLevel, "log-level", "warn", "log level: debug|info|warn|error")
	pf.BoolVar(&o.logJSON, "log-json", false, "emit logs as JSON")
	pf.Float64Var(&o.scores.Match, "match", align.DefaultMatch, "match score")
	pf.Float64Var(&o.scores.Mismatch, "mismatch", align.DefaultMismatch, "mismatch score")
	pf.Float64Var(&o.scores.GapOpen, "gap-open", align.DefaultGapOpen, "gap open score")
	pf.Float64Var(&o.scores.GapExtend, "gap-extend", align.DefaultGapExtend, "gap extend score")

	root.AddCommand(
		newAlignCmd(o, config.ModeGlobal),
		newAlignCmd(o, config.ModeLocal),
		newLCSCmd(o),
		newBatchCmd(o),
	)

	return root
}

// resolve merges profile file and flags (flags win when set) and builds the logger.
func (o *options) resolve(cmd *cobra.Command) error {
	logger, err := logging.New(logging.Config{Level: o.logLevel, JSON: o.logJSON, Output: o.stderr})
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	o.logger = logger

	cfg := config.Default()
	if o.configPath != "" {
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
		logger.Debug("profile loaded", "path", o.configPath, "mode", cfg.Mode)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("match") {
		cfg.Scores.Match = o.scores.Match
	}
	if flags.Changed("mismatch") {
		cfg.Scores.Mismatch = o.scores.Mismatch
	}
	if flags.Changed("gap-open") {
		cfg.Scores.GapOpen = o.scores.GapOpen
	}
	if flags.Changed("gap-extend") {
		cfg.Scores.GapExtend = o.scores.GapExtend
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	o.cfg = cfg

	return nil
}

// usageArgs marks positional-argument failures as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}

		return nil
	}
}

// alignOptions returns the align options for the resolved profile.
func (o *options) alignOptions() []align.Option {
	return []align.Option{
		align.WithScores(o.cfg.AlignScores()),
		align.WithLogger(o.logger),
	}
}
