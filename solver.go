package mtcrack

import (
	"fmt"

	"github.com/katalvlaran/mtcrack/bitmatrix"
	"github.com/katalvlaran/mtcrack/mt19937"
)

// noPivot marks a row that never received a pivot column.
const noPivot = -1

// elimination records the outcome of Gauss–Jordan reduction: the rank
// (rows with a pivot) and, per pivot row, its pivot column.
type elimination struct {
	rank     int
	pivotCol []int
}

// eliminate reduces m to reduced row-echelon form in place, mutating the
// right-hand side b in lock-step with every row swap and row XOR.
//
// Gauss–Jordan with partial pivoting, column-major sweep: for each column,
// the first candidate row at or below the frontier with a 1 in that column
// becomes the pivot; every other row holding a 1 there is cleared by a
// word-parallel row XOR. Columns with no candidate are skipped (free).
//
// m and b are consumed; on return m is in RREF and b is the transformed
// right-hand side.
// Complexity: O(n² × ⌈n/64⌉) word operations, O(n) extra memory.
func eliminate(m *bitmatrix.Matrix, b *bitmatrix.Vector, verbose bool) elimination {
	n := m.Cols()
	pivotCol := make([]int, m.Rows())
	for i := range pivotCol {
		pivotCol[i] = noPivot
	}

	current := 0
	for col := 0; col < n && current < m.Rows(); col++ {
		// Partial pivoting: smallest row ≥ current with a 1 in col.
		pivot := noPivot
		for row := current; row < m.Rows(); row++ {
			if m.Get(row, col) {
				pivot = row
				break
			}
		}
		if pivot == noPivot {
			continue // free column
		}

		m.SwapRows(current, pivot)
		b.Swap(current, pivot)
		pivotCol[current] = col

		for row := 0; row < m.Rows(); row++ {
			if row != current && m.Get(row, col) {
				m.XorRow(row, current)
				b.Xor(row, current)
			}
		}
		current++

		if verbose && current%2048 == 0 {
			fmt.Printf("eliminate: %d/%d pivots placed\n", current, n)
		}
	}

	return elimination{rank: current, pivotCol: pivotCol}
}

// checkConsistent verifies that every pivot-less row carries a zero
// right-hand side. Must run after eliminate and before backSubstitute:
// back-substitution over an inconsistent system is meaningless.
// Returns ErrInconsistent otherwise.
// Complexity: O(⌈n/64⌉).
func checkConsistent(b *bitmatrix.Vector, elim elimination) error {
	if b.AnySet(elim.rank) {
		return ErrInconsistent
	}

	return nil
}

// backSubstitute solves for x given the reduced system, with free columns
// fixed to zero. Walking pivot rows bottom-up, each pivot value is the
// transformed right-hand side bit XOR the parity of the row's overlap
// with the already-fixed entries of x; in RREF that overlap covers
// exactly the free columns to the right of the pivot.
//
// b is received explicitly — it is the same vector eliminate mutated.
// Complexity: O(rank × ⌈n/64⌉).
func backSubstitute(m *bitmatrix.Matrix, b *bitmatrix.Vector, elim elimination) (*bitmatrix.Vector, error) {
	x, err := bitmatrix.NewVector(m.Cols())
	if err != nil {
		return nil, err
	}

	for i := elim.rank - 1; i >= 0; i-- {
		col := elim.pivotCol[i]
		// x[col] is still 0, so the row's own pivot bit contributes nothing.
		parity, err := m.RowAndParity(i, x)
		if err != nil {
			return nil, err
		}
		if b.Get(i) != parity {
			x.Set(col)
		}
	}

	return x, nil
}

// packState repacks a 19 968-bit solution vector into the 624-word MT
// state: bit j lands in word j/32, bit j%32.
// Complexity: O(StateBits).
func packState(x *bitmatrix.Vector) [mt19937.StateWords]uint32 {
	var state [mt19937.StateWords]uint32
	for j := 0; j < mt19937.StateBits; j++ {
		if x.Get(j) {
			state[j/32] |= 1 << (uint(j) % 32)
		}
	}

	return state
}
