// SPDX-License-Identifier: MIT
// Package: seqalign/align
//
// traceback.go: path reconstruction and boundary extension.

package align

// traceback follows backlinks from `end` to the first cell without a
// predecessor and returns the aligned pair for that path.
//
// Steps are collected end → start and reversed in place at the end.
// Complexity: O(rows+cols).
func traceback(m *ScoreMatrix, left, top Sequence, end Coord) Alignment {
	var al, at []byte
	cur := m.cell(end.Row, end.Col)
	for {
		prev, ok := m.Predecessor(cur)
		if !ok {
			break
		}
		switch classify(cur.Coord(), prev.Coord()) {
		case MoveDiagonal:
			al = append(al, left.At(cur.row-1))
			at = append(at, top.At(cur.col-1))
		case MoveVertical:
			al = append(al, left.At(cur.row-1))
			at = append(at, Gap)
		case MoveHorizontal:
			al = append(al, Gap)
			at = append(at, top.At(cur.col-1))
		}
		cur = prev
	}
	reverse(al)
	reverse(at)

	return Alignment{
		Left:  al,
		Top:   at,
		Score: m.cell(end.Row, end.Col).score,
		Start: cur.Coord(),
		End:   end,
	}
}

// extend pads a local core alignment out to both full sequences.
//
// Before the core, the unaligned prefixes left[:Start.Row] and top[:Start.Col]
// are right-justified: characters next to the core line up and the shorter
// prefix receives leading gaps. After the core, left[End.Row:] and
// top[End.Col:] are left-justified and the shorter suffix receives trailing gaps.
func extend(core Alignment, left, top Sequence) Alignment {
	lp, tp := core.Start.Row, core.Start.Col
	ls, ts := left.Len()-core.End.Row, top.Len()-core.End.Col
	pre, suf := max(lp, tp), max(ls, ts)

	n := pre + core.Len() + suf
	out := core
	out.Left = make([]byte, 0, n)
	out.Top = make([]byte, 0, n)

	out.Left = appendGaps(out.Left, pre-lp)
	out.Left = appendRange(out.Left, left, 0, lp)
	out.Top = appendGaps(out.Top, pre-tp)
	out.Top = appendRange(out.Top, top, 0, tp)

	out.Left = append(out.Left, core.Left...)
	out.Top = append(out.Top, core.Top...)

	out.Left = appendRange(out.Left, left, core.End.Row, left.Len())
	out.Left = appendGaps(out.Left, suf-ls)
	out.Top = appendRange(out.Top, top, core.End.Col, top.Len())
	out.Top = appendGaps(out.Top, suf-ts)

	return out
}

// appendRange appends s[from:to] to dst.
func appendRange(dst []byte, s Sequence, from, to int) []byte {
	for i := from; i < to; i++ {
		dst = append(dst, s.At(i))
	}

	return dst
}

// appendGaps appends n Gap bytes to dst.
func appendGaps(dst []byte, n int) []byte {
	for ; n > 0; n-- {
		dst = append(dst, Gap)
	}

	return dst
}

// reverse reverses b in place.
func reverse(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}
