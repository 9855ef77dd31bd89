// Package mt19937 implements the 32-bit Mersenne Twister PRNG with a
// caller-supplied internal state.
//
// What:
//
//   - MT19937 wraps an ordered 624-word state plus an extraction index.
//   - New installs a raw state directly; NewSeeded applies the reference
//     init_genrand seeding for interoperability with deployed generators.
//   - Uint32 applies the twist transform when the state is exhausted,
//     tempers the current word and returns it.
//
// Why:
//
//   - State-recovery tooling needs a generator that starts from an
//     arbitrary state, including single-bit unit states, not only from
//     a seed.
//   - The twist and tempering steps are GF(2)-linear in the state bits,
//     which is what makes output bits expressible as XORs of state bits.
//
// Complexity:
//
//   - Uint32: O(1) amortized (one 624-word twist every 624 extractions).
//   - New/NewSeeded: O(624).
//
// All constants are bit-exact with the reference mt19937ar implementation;
// any deviation breaks interoperability with language standard libraries.
package mt19937
