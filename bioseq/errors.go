// SPDX-License-Identifier: MIT
// Package: seqalign/bioseq
//
// errors.go: sentinel errors for the bioseq package.
// Callers MUST use errors.Is; context is attached with seqErrorf.

package bioseq

import (
	"errors"
	"fmt"
)

// ErrNegativeRepeat is returned by Repeat for a negative count.
var ErrNegativeRepeat = errors.New("bioseq: negative repeat count")

// ErrOutOfRange is returned by Slice for invalid bounds.
var ErrOutOfRange = errors.New("bioseq: index out of range")

// ErrBadSize is returned by Random for a negative length.
var ErrBadSize = errors.New("bioseq: invalid length")

// seqErrorf wraps err as "Seq.<method>: <detail>: <err>".
func seqErrorf(method, format string, err error, args ...any) error {
	return fmt.Errorf("Seq.%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
