// Package bitmatrix: sentinel error set.
// Tests and callers match these via errors.Is; accessors never return
// them wrapped except at package boundaries.
package bitmatrix

import "errors"

var (
	// ErrBadShape indicates non-positive matrix or vector dimensions.
	ErrBadShape = errors.New("bitmatrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates operand sizes that cannot combine,
	// e.g. a word buffer of the wrong length or a vector shorter than a row.
	ErrDimensionMismatch = errors.New("bitmatrix: dimension mismatch")

	// ErrBadBit indicates a FromBits input value other than 0 or 1.
	ErrBadBit = errors.New("bitmatrix: bit values must be 0 or 1")
)
