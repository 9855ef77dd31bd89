package mtcrack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtcrack/mt19937"
)

// TestBuildMatrixBadParams verifies width and dimension validation.
func TestBuildMatrixBadParams(t *testing.T) {
	cases := []struct {
		name string
		n, v int
	}{
		{"WidthZero", 64, 0},
		{"WidthThree", 64, 3},
		{"WidthSixtyFour", 64, 64},
		{"DimZero", 0, 1},
		{"DimNegative", -8, 1},
		{"DimBeyondState", mt19937.StateBits + 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildMatrix(tc.n, tc.v)
			require.ErrorIs(t, err, ErrBadParameter)
		})
	}
}

// TestBuildMatrixColumnDefinition checks the matrix definition at a
// reduced dimension: column j equals the MSB stream of the generator
// started from unit state e_j.
func TestBuildMatrixColumnDefinition(t *testing.T) {
	const n = 256
	art, err := BuildMatrix(n, 1)
	require.NoError(t, err)
	require.Equal(t, n, art.Dim())
	require.Equal(t, 1, art.Width())

	for _, j := range []int{0, 1, 31, 32, 33, 63, 64, 255} {
		mt := mt19937.New(unitState(j))
		for i := 0; i < n; i++ {
			msb := mt.Uint32()>>31&1 == 1
			require.Equal(t, msb, art.Bits().Get(i, j), "cell (%d,%d)", i, j)
		}
	}
}

// TestBuildMatrixWidthRows checks the v>1 row layout: each output word
// contributes its bits 31, 30, …, 32−v as consecutive rows.
func TestBuildMatrixWidthRows(t *testing.T) {
	const (
		n = 64
		v = 4
	)
	art, err := BuildMatrix(n, v)
	require.NoError(t, err)

	for _, j := range []int{0, 17, 63} {
		mt := mt19937.New(unitState(j))
		for i := 0; i < n; i += v {
			y := mt.Uint32()
			for tBit := 0; tBit < v; tBit++ {
				want := y>>(31-uint(tBit))&1 == 1
				require.Equal(t, want, art.Bits().Get(i+tBit, j), "cell (%d,%d)", i+tBit, j)
			}
		}
	}
}

// TestBuildMatrixIdempotence verifies that serial and parallel builds are
// bit-identical: the matrix is a pure function of (n, v).
func TestBuildMatrixIdempotence(t *testing.T) {
	const n = 512
	serial, err := BuildMatrix(n, 1, WithWorkers(1))
	require.NoError(t, err)
	parallel, err := BuildMatrix(n, 1, WithWorkers(8))
	require.NoError(t, err)

	for r := 0; r < n; r++ {
		require.Equal(t, serial.Bits().Row(r), parallel.Bits().Row(r), "row %d", r)
	}
}

// TestArtifactClone verifies deep independence of cloned artifacts.
func TestArtifactClone(t *testing.T) {
	art, err := BuildMatrix(64, 2)
	require.NoError(t, err)

	cl := art.Clone()
	require.Equal(t, art.Width(), cl.Width())
	require.Equal(t, art.Dim(), cl.Dim())

	was := art.Bits().Get(0, 0)
	if was {
		art.Bits().Clear(0, 0)
	} else {
		art.Bits().Set(0, 0)
	}
	require.Equal(t, was, cl.Bits().Get(0, 0))
}
