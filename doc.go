// Package seqalign is a small toolkit for pairwise alignment of biological
// sequences, from score matrices to printable alignments.
//
// 🚀 What is in seqalign?
//
//	• Global alignment: Needleman–Wunsch with affine gaps
//	• Local alignment: Smith–Waterman, every co-optimal result, optionally
//	  padded to the full length of both inputs
//	• LCS: longest common subsequence on the same matrix machinery
//	• Sequences: an immutable upper-cased Seq with seeded random generation
//	• Tooling: FASTA input (plain or gzip), YAML scoring profiles and a
//	  parallel one-against-many batch runner behind the seqalign CLI
//
// ✨ Why choose seqalign?
//
//   - Deterministic: fixed tie-breaking and row-major ordering of optima
//   - Inspectable: every score cell and backlink is reachable from the result
//   - Pure Go matrices: one flat arena per alignment, no pointer graphs
//
// Everything is organized under these packages:
//
//	align/           ScoreMatrix, Global, Local, LCS and the text rendering
//	bioseq/          the Seq value type and Random
//	search/          BinarySearch over sorted slices
//	internal/cli     the cobra command tree used by cmd/seqalign
//	internal/batch   errgroup fan-out of one query over many targets
//	internal/config  YAML scoring profiles
//	internal/seqio   FASTA reader
//	examples/        a runnable read-mapping scenario
//
// Quick example:
//
//	GCA-T-GCT
//	| | | |
//	G-ATTAG-A
//
//	is the global alignment of GATTAGA (bottom) with GCATGCT (top).
//
//	go install github.com/katalvlaran/seqalign/cmd/seqalign@latest
package seqalign
