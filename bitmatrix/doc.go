// Package bitmatrix provides dense GF(2) linear-algebra primitives,
// bit-packed into 64-bit machine words.
//
// What:
//
//   - Matrix: a fixed-dimension dense matrix over GF(2), stored row-major
//     as per-row word slices carved out of one contiguous allocation.
//     Row swaps exchange slice headers in O(1); XorRow runs word-parallel.
//   - Vector: a packed bit vector with single-bit accessors and the
//     word-parallel scans needed by elimination bookkeeping.
//
// Why:
//
//   - Gauss–Jordan elimination over GF(2) at dimension ~20 000 is only
//     tractable when row addition is a tight 64-bit XOR loop; per-bit
//     storage would be two orders of magnitude slower and 64× larger.
//
// Complexity (n = columns, w = ⌈n/64⌉ words per row):
//
//   - Get/Set/Clear:  O(1).
//   - SwapRows:       O(1) (slice-header exchange).
//   - XorRow:         O(w).
//   - RowAndParity:   O(w).
//   - Clone:          O(rows × w).
//
// Errors:
//
//   - ErrBadShape: non-positive dimensions requested.
//   - ErrDimensionMismatch: operand sizes disagree (FromWords, RowAndParity).
//   - ErrBadBit: FromBits input value outside {0, 1}.
//
// Out-of-range row/column indices on accessors are programmer errors and
// panic; all user-triggerable conditions return sentinels.
package bitmatrix
