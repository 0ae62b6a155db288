package ring

import (
	"fmt"
	"io"
)

// randMask keeps the low five bits of a sampled byte, restricting candidates
// to [0, 32) before rejection. Reducing a full byte mod 26 instead would be
// biased: residues below 256 mod 26 would occur 10 times in 256 draws and
// the rest only 9.
const randMask = 1<<5 - 1

// Random draws an Element uniformly from the 26 residues, consuming entropy
// from rand. Candidates are sampled as five-bit values and rejected until
// one lands below [Modulus], so every residue is exactly equally likely.
//
// The random source is always supplied by the caller; pass crypto/rand.Reader
// in production. Random returns an error only if rand fails.
func Random(rand io.Reader) (Element, error) {
	var buf [1]byte
	for {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return Element{}, fmt.Errorf("ring: failed to read random byte: %w", err)
		}
		if v := buf[0] & randMask; v < Modulus {
			return Element{v: int8(v)}, nil
		}
	}
}
