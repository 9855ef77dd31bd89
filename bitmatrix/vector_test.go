package bitmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtcrack/bitmatrix"
)

// TestNewVectorErrors verifies length validation.
func TestNewVectorErrors(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := bitmatrix.NewVector(n)
		require.ErrorIs(t, err, bitmatrix.ErrBadShape)
	}
}

// TestFromBits verifies packing order and strict {0,1} validation.
func TestFromBits(t *testing.T) {
	v, err := bitmatrix.FromBits([]uint8{1, 0, 0, 1, 1})
	require.NoError(t, err)
	require.Equal(t, 5, v.Len())
	for i, want := range []bool{true, false, false, true, true} {
		require.Equal(t, want, v.Get(i), "bit %d", i)
	}

	_, err = bitmatrix.FromBits(nil)
	require.ErrorIs(t, err, bitmatrix.ErrBadShape)

	_, err = bitmatrix.FromBits([]uint8{0, 1, 2})
	require.ErrorIs(t, err, bitmatrix.ErrBadBit)
}

// TestVectorBitOps exercises Set/Clear/Flip/Swap/Xor across a word boundary.
func TestVectorBitOps(t *testing.T) {
	v, err := bitmatrix.NewVector(130)
	require.NoError(t, err)

	v.Set(64)
	require.True(t, v.Get(64))
	v.Flip(64)
	require.False(t, v.Get(64))
	v.Flip(129)
	require.True(t, v.Get(129))
	v.Clear(129)
	require.False(t, v.Get(129))

	// Swap moves a lone 1; swapping equal bits is a no-op.
	v.Set(3)
	v.Swap(3, 100)
	require.False(t, v.Get(3))
	require.True(t, v.Get(100))
	v.Swap(4, 5)
	require.False(t, v.Get(4))
	require.False(t, v.Get(5))

	// Xor(dst, src): dst ^= src.
	v.Xor(3, 100)
	require.True(t, v.Get(3))
	v.Xor(3, 100)
	require.False(t, v.Get(3))
	v.Xor(100, 4) // src is 0: no effect
	require.True(t, v.Get(100))
}

// TestAnySet verifies the word-parallel suffix scan, including partial
// leading words and out-of-range froms.
func TestAnySet(t *testing.T) {
	v, err := bitmatrix.NewVector(200)
	require.NoError(t, err)
	require.False(t, v.AnySet(0))

	v.Set(70)
	cases := []struct {
		from int
		want bool
	}{
		{0, true}, {63, true}, {70, true}, {71, false},
		{199, false}, {200, false}, {500, false}, {-5, true},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, v.AnySet(tc.from), "from=%d", tc.from)
	}

	v.Clear(70)
	v.Set(199)
	require.True(t, v.AnySet(199))
	require.True(t, v.AnySet(0))
}

// TestVectorClone verifies deep independence.
func TestVectorClone(t *testing.T) {
	v, err := bitmatrix.NewVector(80)
	require.NoError(t, err)
	v.Set(79)

	c := v.Clone()
	v.Clear(79)
	v.Set(0)

	require.True(t, c.Get(79))
	require.False(t, c.Get(0))
}
