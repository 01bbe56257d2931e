// Package bioseq provides Seq, an immutable upper-cased biological sequence,
// and a seeded generator for random fixtures.
//
// Seq implements align.Sequence (Len, At), so it can be handed directly to
// the aligners:
//
//	left := bioseq.New("gattaga") // stored as "GATTAGA"
//	top := bioseq.New("gcatgct")
//	g, err := align.NewGlobal(left, top)
//
// All operations return new values; a Seq is safe to share between goroutines.
package bioseq
