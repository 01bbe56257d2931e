// Package align computes pairwise alignments of biological sequences.
//
// 🚀 What is in here?
//
//   - Global alignment (Needleman–Wunsch): both sequences end to end.
//   - Local alignment (Smith–Waterman): best-scoring regions, with every
//     co-optimal result and free restart at score 0.
//   - LCS: longest common subsequence on the same matrix machinery.
//
// ✨ Key features:
//   - affine gaps (gap open vs gap extend) inferred from each cell's backlink
//   - backlinks stored as matrix coordinates in one flat arena (no pointers)
//   - deterministic tie-breaking: diagonal → top → left
//   - local results available as the core region or padded to full length
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/seqalign/align"
//	  "github.com/katalvlaran/seqalign/bioseq"
//	)
//
//	g, err := align.NewGlobal(bioseq.New("gattaga"), bioseq.New("gcatgct"))
//	if err != nil {
//	  // errors.Is(err, align.ErrInvalidInput)
//	}
//	_ = g.Display(os.Stdout)
//	// GCA-T-GCT
//	// | | | |
//	// G-ATTAG-A
//
// Scoring defaults: match +2, mismatch −1, gap open −2, gap extend −1
// (override with WithMatch, WithMismatch, WithGapOpen, WithGapExtend or
// WithScores).
//
// Gap model:
//
//	A gap step out of a cell costs GapOpen when that cell has no predecessor
//	or was itself entered by a gap step, and GapExtend when it was entered
//	diagonally. No separate gap-state matrices are kept, so scores can differ
//	from a three-matrix (Gotoh) affine implementation.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M): the full matrix is always kept for traceback.
//
// An aligner owns its matrix and is not safe for concurrent mutation, but a
// finished aligner is read-only; independent aligners can run in parallel.
package align
