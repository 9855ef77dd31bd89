// File: bitmatrix/example_test.go
package bitmatrix_test

import (
	"fmt"

	"github.com/katalvlaran/mtcrack/bitmatrix"
)

////////////////////////////////////////////////////////////////////////////////
// Example: row operations
////////////////////////////////////////////////////////////////////////////////

// ExampleMatrix_XorRow demonstrates the two row operations elimination
// is built from: an O(1) row swap and a word-parallel row XOR.
// Scenario:
//
//   - 2×4 matrix, row 0 = 1100, row 1 = 0110
//   - XorRow(0, 1) leaves row 0 = 1010 (GF(2) addition)
//
// Complexity: O(⌈cols/64⌉) per XorRow
func ExampleMatrix_XorRow() {
	m, _ := bitmatrix.New(2, 4)
	m.Set(0, 0)
	m.Set(0, 1)
	m.Set(1, 1)
	m.Set(1, 2)

	m.XorRow(0, 1)

	for c := 0; c < 4; c++ {
		if m.Get(0, c) {
			fmt.Print(1)
		} else {
			fmt.Print(0)
		}
	}
	fmt.Println()

	// Output:
	// 1010
}
