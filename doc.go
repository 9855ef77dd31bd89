// Package mtcrack reconstructs the internal state of a 32-bit Mersenne
// Twister (MT19937) from observed output bits and predicts every
// subsequent output.
//
// 🔍 What is mtcrack?
//
//	MT19937 is a deterministic GF(2)-linear map: every output bit is an
//	XOR of a fixed subset of the 19 968 bits of initial state. Given at
//	least 19 968 observed bits, recovery is a square linear solve:
//
//	  • BuildMatrix  — materialize the 19 968×19 968 transformation matrix
//	    by running one single-bit generator per state bit
//	  • Cracker.Recover — in-place Gauss–Jordan elimination with partial
//	    pivoting over bit-packed rows, consistency check, back-substitution
//	  • Cracker.NextUint32 — predictions from the reconstructed generator,
//	    fast-forwarded past the observation window
//	  • TopBits — repack top-v-bit observations (v ∈ {1,2,4,8,16,32})
//	    into the bit stream the solver consumes
//
// ✨ Why choose mtcrack?
//
//   - Word-parallel      — rows are packed 64-bit words; elimination runs
//     at memory bandwidth, not per-bit
//   - Deterministic      — the matrix depends only on (N, v) and the MT
//     constants; builds are byte-identical and cacheable on disk
//   - Pure Go            — no cgo; optional mmap fast path on unix
//
// Under the hood, everything is organized under two subpackages plus
// this root:
//
//	mt19937/    — the reference twist/tempering engine over raw states
//	bitmatrix/  — dense GF(2) matrix and vector primitives
//
// The public API is blocking and single-threaded; only matrix
// construction fans out across column stripes. Errors are sentinels
// (ErrNotEnoughBits, ErrInconsistent, ErrNotRecovered, ErrBadParameter)
// matched with errors.Is. The solver consumes its matrix destructively;
// clone first if you need it again.
package mtcrack
