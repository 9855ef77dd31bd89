package mtcrack

import "fmt"

// TopBits repacks outputs observed as the top v bits of each 32-bit draw
// into the flat bit sequence Recover consumes.
//
// Each output contributes its bits 31, 30, …, 32−v in that order; bits
// are never reordered across outputs. At least ⌈19968/v⌉ outputs are
// required; when more are supplied, the result is trimmed to the last
// 19 968 bits in receipt order, matching Recover's own trimming.
//
// Returns ErrBadParameter for an unsupported v and ErrNotEnoughBits when
// too few outputs are supplied.
// Complexity: O(len(outputs) × v).
func TopBits(outputs []uint32, v int) ([]uint8, error) {
	if !validWidth(v) {
		return nil, fmt.Errorf("mtcrack: TopBits width %d: %w", v, ErrBadParameter)
	}
	need := StateBits / v // all supported widths divide 19968 evenly
	if len(outputs) < need {
		return nil, fmt.Errorf("mtcrack: TopBits got %d outputs, need %d: %w",
			len(outputs), need, ErrNotEnoughBits)
	}

	bitvals := make([]uint8, 0, len(outputs)*v)
	for _, y := range outputs {
		for t := 0; t < v; t++ {
			bitvals = append(bitvals, uint8(y>>(31-uint(t))&1))
		}
	}

	return bitvals[len(bitvals)-StateBits:], nil
}
