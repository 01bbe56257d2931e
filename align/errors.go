// SPDX-License-Identifier: MIT
// Package: seqalign/align
//
// errors.go: sentinel errors for the align package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Constructors validate everything before any matrix is allocated.
//   • Matrix construction and traceback never fail on validated input.
//   • Context is attached with alignErrorf, never baked into the sentinel.

package align

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned by NewGlobal, NewLocal and LCS when a sequence
// argument is nil or a score parameter is NaN or ±Inf.
var ErrInvalidInput = errors.New("align: invalid input")

// ErrOutOfRange indicates that a (row, column) pair lies outside the score matrix.
var ErrOutOfRange = errors.New("align: index out of range")

// alignErrorf wraps err with the calling method and a formatted detail:
// "<method>: <detail>: <err>".
func alignErrorf(method, format string, err error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
