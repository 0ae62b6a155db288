// Package prng provides a deterministic pseudo-random byte stream derived
// from a seed with the SHAKE256 extendable-output function.
//
// The stream satisfies io.Reader, so it can be passed anywhere this module
// accepts an injected random source (ring.Random, shift.GenerateKey). That
// makes randomized behavior reproducible: the same seed always yields the
// same keys, which is what tests and worked examples want.
//
// prng is NOT a substitute for crypto/rand in production use. A fixed seed
// means a fixed key.
package prng

import "golang.org/x/crypto/sha3"

// Reader is a deterministic io.Reader producing the SHAKE256 keystream of
// its seed. It is stateful (each Read continues the stream) and not safe for
// concurrent use; give each goroutine its own Reader.
type Reader struct {
	xof sha3.ShakeHash
}

// New returns a Reader whose byte stream is fully determined by seed.
// Readers created from equal seeds produce identical streams.
func New(seed []byte) *Reader {
	xof := sha3.NewShake256()
	_, _ = xof.Write(seed)
	return &Reader{xof: xof}
}

// Read fills p with the next bytes of the stream. It never fails: SHAKE256
// output is unbounded, so n is always len(p) and err is always nil.
func (r *Reader) Read(p []byte) (n int, err error) {
	return r.xof.Read(p)
}
