// SPDX-License-Identifier: MIT
// Package mtcrack: sentinel error set. All public operations return these
// sentinels (optionally wrapped with context via %w); tests and callers
// match them with errors.Is. The core never logs and never terminates
// the process.
package mtcrack

import (
	"errors"
	"fmt"
)

var (
	// ErrNotEnoughBits indicates an observation shorter than the required
	// bit count. The caller must supply more data.
	ErrNotEnoughBits = errors.New("mtcrack: not enough observation bits")

	// ErrInconsistent indicates that elimination produced a zero row with a
	// nonzero right-hand side: the observations did not come from MT19937,
	// were corrupted, or used a different bit width.
	ErrInconsistent = errors.New("mtcrack: observations inconsistent with MT19937 output")

	// ErrNotRecovered indicates a prediction request before a successful
	// Recover. Programmer error.
	ErrNotRecovered = errors.New("mtcrack: state not recovered yet")

	// ErrBadParameter indicates an unsupported observation width, matrix
	// shape, or malformed input. Programmer error.
	ErrBadParameter = errors.New("mtcrack: bad parameter")

	// ErrMatrixConsumed indicates a repeated Recover on a Cracker whose
	// transformation matrix was already destroyed by elimination.
	// Construct a new Cracker or inject a fresh matrix.
	ErrMatrixConsumed = errors.New("mtcrack: transformation matrix already consumed")
)

// ErrCacheMismatch indicates a persisted matrix whose header (magic,
// version, N, v) disagrees with the requested parameters. It wraps
// ErrBadParameter so errors.Is(err, ErrBadParameter) also holds.
var ErrCacheMismatch = fmt.Errorf("mtcrack: matrix cache mismatch: %w", ErrBadParameter)
