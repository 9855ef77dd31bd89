package mtcrack

import (
	"fmt"

	"github.com/katalvlaran/mtcrack/bitmatrix"
	"github.com/katalvlaran/mtcrack/mt19937"
)

// StateBits is the number of observation bits required for recovery,
// equal to the MT19937 state size.
const StateBits = mt19937.StateBits

// Cracker recovers an MT19937 state from observed output bits and
// predicts subsequent outputs.
//
// Lifecycle: New (builds or adopts the transformation matrix) →
// Recover (consumes the matrix, arms the predictor) → NextUint32 / State.
// A Cracker is not safe for concurrent use.
type Cracker struct {
	width     int
	artifact  *MatrixArtifact // nil once consumed by Recover
	verbose   bool
	state     [mt19937.StateWords]uint32
	recovered bool
	mt        *mt19937.MT19937
}

// New allocates a Cracker for full-width (19 968-bit) recovery.
//
// Without WithMatrix, the transformation matrix is built here — an
// expensive, CPU-bound step (~50 MiB, Θ(N²/v) generator extractions).
// WithMatrix adopts a previously built, cloned, or cache-loaded artifact
// and overrides WithWidth with the artifact's own width.
// Returns ErrBadParameter for an unsupported width or an artifact whose
// dimension is not 19 968.
func New(opts ...Option) (*Cracker, error) {
	o := gatherOptions(opts...)

	if o.matrix != nil {
		if o.matrix.Dim() != StateBits {
			return nil, fmt.Errorf("mtcrack: injected matrix dimension %d, need %d: %w",
				o.matrix.Dim(), StateBits, ErrBadParameter)
		}

		return &Cracker{width: o.matrix.Width(), artifact: o.matrix, verbose: o.verbose}, nil
	}

	if !validWidth(o.width) {
		return nil, fmt.Errorf("mtcrack: width %d: %w", o.width, ErrBadParameter)
	}
	art, err := BuildMatrix(StateBits, o.width, opts...)
	if err != nil {
		return nil, err
	}

	return &Cracker{width: o.width, artifact: art, verbose: o.verbose}, nil
}

// Recover solves A·x = b for the initial state from a {0,1}-valued bit
// sequence of length ≥ 19 968 and arms the predictor.
//
// Only the last 19 968 bits are used, so a caller may pass a longer
// stream; the recovered state then describes the generator position
// 19 968 bits before the end, and predictions continue from the end.
//
// Stage 1 (Validate): length and bit values.
// Stage 2 (Eliminate): in-place Gauss–Jordan over the matrix and b.
// Stage 3 (Check): pivot-less rows must meet a zero right-hand side.
// Stage 4 (Solve): back-substitute with free variables fixed to zero.
// Stage 5 (Arm): repack the state and fast-forward a fresh generator
// past the observation window (one draw per v observed bits).
//
// The transformation matrix is consumed even on ErrInconsistent; the
// predictor is armed only on success.
// Returns ErrNotEnoughBits, ErrBadParameter, ErrMatrixConsumed or
// ErrInconsistent.
// Complexity: O(N² × ⌈N/64⌉) word operations.
func (c *Cracker) Recover(bitvals []uint8) error {
	if c.artifact == nil {
		return ErrMatrixConsumed
	}
	if len(bitvals) < StateBits {
		return fmt.Errorf("mtcrack: Recover got %d bits, need %d: %w",
			len(bitvals), StateBits, ErrNotEnoughBits)
	}

	b, err := bitmatrix.FromBits(bitvals[len(bitvals)-StateBits:])
	if err != nil {
		return fmt.Errorf("mtcrack: Recover observation: %w", ErrBadParameter)
	}

	// The matrix is destroyed by elimination no matter the outcome.
	m := c.artifact.Bits()
	c.artifact = nil

	elim := eliminate(m, b, c.verbose)
	if err = checkConsistent(b, elim); err != nil {
		return err
	}
	x, err := backSubstitute(m, b, elim)
	if err != nil {
		return err
	}

	c.state = packState(x)

	// One extraction per observed word: v observation bits each.
	c.mt = mt19937.New(c.state)
	for i := 0; i < StateBits/c.width; i++ {
		c.mt.Uint32()
	}
	c.recovered = true

	return nil
}

// NextUint32 returns the next predicted 32-bit output of the observed
// generator. Returns ErrNotRecovered before a successful Recover.
// Complexity: O(1) amortized.
func (c *Cracker) NextUint32() (uint32, error) {
	if !c.recovered {
		return 0, ErrNotRecovered
	}

	return c.mt.Uint32(), nil
}

// State returns the reconstructed 624-word state at the start of the
// observation window (pre-advance): a state that reproduces every
// observed bit. State bits that no observed bit determines are zero; for
// MSB observations these are the low 31 bits of word 0 (apart from the
// single parity the first output exposes), so word 0 can differ from the
// observed generator's while every prediction still matches.
// Returns ErrNotRecovered before a successful Recover.
// Complexity: O(StateWords).
func (c *Cracker) State() ([mt19937.StateWords]uint32, error) {
	if !c.recovered {
		return [mt19937.StateWords]uint32{}, ErrNotRecovered
	}

	return c.state, nil
}
