// SPDX-License-Identifier: MIT

// Package seqio reads FASTA records for the CLI from files (optionally
// gzip-compressed) or stdin ("-"). Parsing is done by grailbio's
// encoding/fasta after comments and blanks are stripped.
package seqio

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grailbio/bio/encoding/fasta"

	"github.com/katalvlaran/seqalign/bioseq"
)

// ErrNoRecords is returned when a FASTA source holds no sequence.
var ErrNoRecords = errors.New("seqio: no FASTA records")

// ErrMissingHeader is returned when residues appear before the first '>' line
// or a header carries no ID.
var ErrMissingHeader = errors.New("seqio: sequence data before first header")

// ErrDuplicateID is returned when two headers share the same first word.
var ErrDuplicateID = errors.New("seqio: duplicate record ID")

// Record is one FASTA entry. ID is the first word of the header line.
type Record struct {
	ID  string
	Seq bioseq.Seq
}

// ReadFASTA parses every record in r, in file order. Blank lines and ';'
// comments are skipped, whitespace inside sequence lines is dropped, residues
// are upper-cased by bioseq.
func ReadFASTA(r io.Reader) ([]Record, error) {
	clean, err := normalize(r)
	if err != nil {
		return nil, err
	}
	fa, err := fasta.New(bytes.NewReader(clean))
	if err != nil {
		return nil, fmt.Errorf("read FASTA: %w", err)
	}

	names := fa.SeqNames()
	out := make([]Record, 0, len(names))
	for _, name := range names {
		n, err := fa.Len(name)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", name, err)
		}
		var residues string
		if n > 0 {
			if residues, err = fa.Get(name, 0, n); err != nil {
				return nil, fmt.Errorf("record %s: %w", name, err)
			}
		}
		out = append(out, Record{ID: name, Seq: bioseq.New(residues)})
	}

	return out, nil
}

// normalize rewrites r into the plain layout fasta.New expects: headers
// reduced to ">ID", sequence lines without blanks, no comments or empty lines.
func normalize(r io.Reader) ([]byte, error) {
	var (
		out  bytes.Buffer
		ids  = make(map[string]struct{})
		line int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line++
		text := bytes.TrimSpace(sc.Bytes())
		switch {
		case len(text) == 0 || text[0] == ';':
			continue
		case text[0] == '>':
			id := ""
			if fields := strings.Fields(string(text[1:])); len(fields) > 0 {
				id = fields[0]
			}
			if id == "" {
				return nil, fmt.Errorf("line %d: %w", line, ErrMissingHeader)
			}
			if _, dup := ids[id]; dup {
				return nil, fmt.Errorf("line %d: %q: %w", line, id, ErrDuplicateID)
			}
			ids[id] = struct{}{}
			out.WriteByte('>')
			out.WriteString(id)
			out.WriteByte('\n')
		default:
			if len(ids) == 0 {
				return nil, fmt.Errorf("line %d: %w", line, ErrMissingHeader)
			}
			for _, b := range text {
				if b != ' ' && b != '\t' {
					out.WriteByte(b)
				}
			}
			out.WriteByte('\n')
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read FASTA: %w", err)
	}
	if len(ids) == 0 {
		return nil, ErrNoRecords
	}

	return out.Bytes(), nil
}

// ReadFile parses the FASTA file at path. "-" reads stdin; a ".gz" suffix
// enables gzip decompression.
func ReadFile(path string) ([]Record, error) {
	rc, err := open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	recs, err := ReadFASTA(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return recs, nil
}

// First returns the first record of the FASTA file at path.
func First(path string) (Record, error) {
	recs, err := ReadFile(path)
	if err != nil {
		return Record{}, err
	}

	return recs[0], nil
}

// open returns a reader for path, unwrapping gzip by extension.
func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return fh, nil
	}
	gr, err := gzip.NewReader(fh)
	if err != nil {
		_ = fh.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return struct {
		io.Reader
		io.Closer
	}{Reader: gr, Closer: fh}, nil
}
