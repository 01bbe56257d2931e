// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/bioseq"
	"github.com/katalvlaran/seqalign/internal/batch"
	"github.com/katalvlaran/seqalign/internal/config"
	"github.com/katalvlaran/seqalign/internal/seqio"
)

// pairInput names the two sequences of a pairwise command.
type pairInput struct {
	leftFASTA string
	topFASTA  string
}

func (p *pairInput) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.leftFASTA, "left-fasta", "", "FASTA file for the left sequence (first record)")
	cmd.Flags().StringVar(&p.topFASTA, "top-fasta", "", "FASTA file for the top sequence (first record)")
}

// load returns the left and top sequences from FASTA flags, positional
// arguments, or a mix of both (flags take the first positional slots).
func (p *pairInput) load(args []string) (left, top seqio.Record, err error) {
	next := 0
	pick := func(path, name string) (seqio.Record, error) {
		if path != "" {
			return seqio.First(path)
		}
		if next >= len(args) {
			return seqio.Record{}, fmt.Errorf("%w: missing %s sequence", errUsage, name)
		}
		r := seqio.Record{ID: name, Seq: bioseq.New(args[next])}
		next++

		return r, nil
	}
	if left, err = pick(p.leftFASTA, "left"); err != nil {
		return left, top, err
	}
	if top, err = pick(p.topFASTA, "top"); err != nil {
		return left, top, err
	}
	if next != len(args) {
		return left, top, fmt.Errorf("%w: %d unexpected argument(s)", errUsage, len(args)-next)
	}

	return left, top, nil
}

// newAlignCmd builds the "global" or "local" subcommand.
func newAlignCmd(o *options, mode string) *cobra.Command {
	var (
		in   pairInput
		core bool
	)
	short := "Global alignment (Needleman–Wunsch, affine gaps)"
	if mode == config.ModeLocal {
		short = "Local alignment (Smith–Waterman, affine gaps, all co-optimal results)"
	}

	cmd := &cobra.Command{
		Use:   mode + " [LEFT] [TOP]",
		Short: short,
		Args:  usageArgs(cobra.MaximumNArgs(2)),
		RunE: func(_ *cobra.Command, args []string) error {
			left, top, err := in.load(args)
			if err != nil {
				return err
			}
			o.logger.Info("aligning",
				"mode", mode,
				"left_id", left.ID, "left_len", left.Seq.Len(),
				"top_id", top.ID, "top_len", top.Seq.Len(),
			)

			if mode == config.ModeGlobal {
				g, err := align.NewGlobal(left.Seq, top.Seq, o.alignOptions()...)
				if err != nil {
					return err
				}

				return o.writeReport(report{
					Mode:       mode,
					Score:      g.Score(),
					Found:      true,
					Scores:     g.Scores(),
					Alignments: []align.Alignment{g.Alignment()},
				})
			}

			l, err := align.NewLocal(left.Seq, top.Seq, o.alignOptions()...)
			if err != nil {
				return err
			}
			as := l.Alignments()
			if core {
				as = l.CoreAlignments()
			}

			return o.writeReport(report{Mode: mode, Score: l.BestScore(), Found: l.Found(), Scores: l.Scores(), Alignments: as})
		},
	}
	in.bind(cmd)
	if mode == config.ModeLocal {
		cmd.Flags().BoolVar(&core, "core", false, "print only the locally aligned regions")
	}

	return cmd
}

// newLCSCmd builds the "lcs" subcommand.
func newLCSCmd(o *options) *cobra.Command {
	var in pairInput
	cmd := &cobra.Command{
		Use:   "lcs [LEFT] [TOP]",
		Short: "Longest common subsequence",
		Args:  usageArgs(cobra.MaximumNArgs(2)),
		RunE: func(_ *cobra.Command, args []string) error {
			left, top, err := in.load(args)
			if err != nil {
				return err
			}
			out, err := align.LCS(left.Seq, top.Seq)
			if err != nil {
				return err
			}
			if o.cfg.Format == config.FormatJSON {
				return writeJSON(o.stdout, map[string]any{"lcs": string(out), "length": len(out)})
			}
			_, err = fmt.Fprintln(o.stdout, string(out))

			return err
		},
	}
	in.bind(cmd)

	return cmd
}

// newBatchCmd builds the "batch" subcommand.
func newBatchCmd(o *options) *cobra.Command {
	var (
		queryPath   string
		targetsPath string
		mode        string
		workers     int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Align a query against every record of a FASTA file in parallel",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if queryPath == "" || targetsPath == "" {
				return fmt.Errorf("%w: --query and --targets are required", errUsage)
			}
			if !cmd.Flags().Changed("mode") {
				mode = o.cfg.Mode
			}
			query, err := seqio.First(queryPath)
			if err != nil {
				return err
			}
			targets, err := seqio.ReadFile(targetsPath)
			if err != nil {
				return err
			}
			o.logger.Info("batch start", "mode", mode, "query", query.ID, "targets", len(targets), "workers", workers)

			results, err := batch.Run(cmd.Context(), batch.Job{
				Query:   query,
				Targets: targets,
				Mode:    batch.Mode(mode),
				Scores:  o.cfg.AlignScores(),
				Workers: workers,
				Logger:  o.logger,
			})
			if err != nil {
				return err
			}

			scores := o.cfg.AlignScores()
			reports := make([]report, len(results))
			for i, r := range results {
				reports[i] = report{
					Mode:       mode,
					Target:     r.TargetID,
					Score:      r.Score,
					Found:      r.Found,
					Scores:     scores,
					Alignments: r.Alignments,
				}
			}

			return o.writeReports(reports)
		},
	}
	cmd.Flags().StringVar(&queryPath, "query", "", "FASTA file holding the query (first record)")
	cmd.Flags().StringVar(&targetsPath, "targets", "", "FASTA file of targets")
	cmd.Flags().StringVar(&mode, "mode", config.ModeGlobal, "alignment mode: global|local")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel alignments (0 = GOMAXPROCS)")

	return cmd
}
