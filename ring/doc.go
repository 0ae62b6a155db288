// Package ring implements the ring of integers modulo 26, written ℤ/26ℤ,
// together with the fixed encoding between ring values and the 26 lowercase
// letters of the Latin alphabet ('a'→0 … 'z'→25).
//
// The ring is the shared plaintext, ciphertext and key space of the classical
// Latin-alphabet ciphers in this module (see the shift package). Arithmetic
// is closed: adding or subtracting two canonical elements always yields a
// canonical element, so a value built through the constructors in this
// package can never leave the range [0, 26).
//
// # Construction
//
// There are exactly three ways to obtain an [Element]:
//
//   - [FromChar] — validating; the only entry point for untrusted input.
//   - [FromInt] — canonicalizing; reduces any integer to its least
//     nonnegative residue and always succeeds.
//   - [Random] — exactly uniform over the 26 residues, drawing from a
//     caller-supplied random source.
//
// The zero value of [Element] is the additive identity and is ready to use.
//
// # Randomness
//
// Random never seeds or consults a global generator. Pass crypto/rand.Reader
// in production, or a deterministic stream (see the prng package) when
// reproducibility matters, e.g. in tests:
//
//	elem, err := ring.Random(rand.Reader)
package ring
