// File: example_test.go
package mtcrack_test

import (
	"fmt"

	"github.com/katalvlaran/mtcrack"
)

////////////////////////////////////////////////////////////////////////////////
// Example: TopBits
////////////////////////////////////////////////////////////////////////////////

// ExampleTopBits demonstrates repacking top-2-bit observations into the
// flat bit sequence Recover consumes.
// Scenario:
//
//   - The victim exposes only the top 2 bits of each 32-bit draw
//     (e.g. random() >> 30), so 9 984 draws carry the 19 968 bits needed.
//   - Output word 0 is 0xC0000000: bits 31 and 30 are both 1 and become
//     observation bits 0 and 1, in that order.
//
// Complexity: O(outputs × v)
func ExampleTopBits() {
	outputs := make([]uint32, mtcrack.StateBits/2)
	outputs[0] = 0xC0000000

	bits, err := mtcrack.TopBits(outputs, 2)
	if err != nil {
		fmt.Println("repack failed:", err)
		return
	}
	fmt.Println("bits:", len(bits))
	fmt.Println("head:", bits[0], bits[1], bits[2], bits[3])

	// Output:
	// bits: 19968
	// head: 1 1 0 0
}
