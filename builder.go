package mtcrack

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mtcrack/bitmatrix"
	"github.com/katalvlaran/mtcrack/mt19937"
)

// MatrixArtifact bundles a transformation matrix with the observation
// width it was built for. The pair travels together: a matrix built for
// one width solves nothing for another.
type MatrixArtifact struct {
	mat   *bitmatrix.Matrix
	width int
}

// Dim returns the square dimension n of the matrix. Complexity: O(1).
func (a *MatrixArtifact) Dim() int { return a.mat.Rows() }

// Width returns the observation width v the matrix was built for.
// Complexity: O(1).
func (a *MatrixArtifact) Width() int { return a.width }

// Bits exposes the underlying GF(2) matrix. Elimination consumes it
// destructively; Clone first if the artifact must survive a Recover.
func (a *MatrixArtifact) Bits() *bitmatrix.Matrix { return a.mat }

// Clone returns an independent deep copy of the artifact.
// Complexity: O(n × ⌈n/64⌉).
func (a *MatrixArtifact) Clone() *MatrixArtifact {
	return &MatrixArtifact{mat: a.mat.Clone(), width: a.width}
}

// BuildMatrix materializes the n×n GF(2) transformation matrix for
// top-v-bit observations.
//
// Column j is the bit stream obtained by running a generator from the
// unit state e_j (all zero except state bit j) and harvesting, per
// extracted word, its bits 31, 30, …, 32−v as v consecutive rows.
// Because twist and tempering are GF(2)-linear, this is exactly the
// state-to-observation linear map applied to the j-th basis vector.
//
// The matrix depends only on (n, v) and the MT19937 constants; it is a
// pure constant, and every build — serial or parallel — is bit-identical.
// Construction fans out across column stripes aligned to 64-column
// boundaries, so no two workers ever touch the same row word.
//
// Returns ErrBadParameter for an unsupported v or n outside (0, 19968].
// Complexity: O(n²/v) generator extractions; O(n × ⌈n/64⌉) memory.
func BuildMatrix(n, v int, opts ...Option) (*MatrixArtifact, error) {
	if !validWidth(v) {
		return nil, fmt.Errorf("mtcrack: BuildMatrix width %d: %w", v, ErrBadParameter)
	}
	if n <= 0 || n > mt19937.StateBits {
		return nil, fmt.Errorf("mtcrack: BuildMatrix dimension %d: %w", n, ErrBadParameter)
	}
	o := gatherOptions(opts...)

	m, err := bitmatrix.New(n, n)
	if err != nil {
		return nil, err
	}

	// Stripe boundaries are multiples of 64 columns: each worker owns whole
	// words of every row, so concurrent Set calls never share a word.
	workers := o.effectiveWorkers()
	wordCols := (n + bitmatrix.WordBits - 1) / bitmatrix.WordBits
	if workers > wordCols {
		workers = wordCols
	}

	if workers <= 1 {
		buildColumns(m, 0, n, n, v)

		return &MatrixArtifact{mat: m, width: v}, nil
	}

	var g errgroup.Group
	stripe := (wordCols + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * stripe * bitmatrix.WordBits
		hi := (w + 1) * stripe * bitmatrix.WordBits
		if lo >= n {
			break
		}
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			buildColumns(m, lo, hi, n, v)

			return nil
		})
		if o.verbose {
			fmt.Printf("BuildMatrix: stripe columns [%d,%d)\n", lo, hi)
		}
	}
	// Workers return no errors; Wait is a pure join point.
	_ = g.Wait()

	return &MatrixArtifact{mat: m, width: v}, nil
}

// buildColumns fills columns [lo, hi) of the n×n matrix for width v.
func buildColumns(m *bitmatrix.Matrix, lo, hi, n, v int) {
	for j := lo; j < hi; j++ {
		mt := mt19937.New(unitState(j))
		for row := 0; row < n; {
			y := mt.Uint32()
			for t := 0; t < v && row < n; t++ {
				if y>>(31-uint(t))&1 == 1 {
					m.Set(row, j)
				}
				row++
			}
		}
	}
}

// unitState returns the 624-word state whose only set bit is state bit j:
// word j/32, bit j%32.
func unitState(j int) [mt19937.StateWords]uint32 {
	var s [mt19937.StateWords]uint32
	s[j/32] = 1 << (uint(j) % 32)

	return s
}
