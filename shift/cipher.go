package shift

import (
	"io"

	"github.com/hasbyte1/go-classical-crypto/cipher"
	"github.com/hasbyte1/go-classical-crypto/ring"
)

// Cipher is the Latin Shift Cipher. It is stateless — the zero value is
// ready to use — and its methods are pure, total functions: encryption and
// decryption never fail for values built through this package's
// constructors.
type Cipher struct{}

// Compile-time checks that Cipher satisfies the generic cipher interfaces.
var (
	_ cipher.Cipher[Message, Ciphertext, Key] = Cipher{}
	_ cipher.KeyGenerator[Key]                = Cipher{}
)

// Encrypt shifts every letter of msg forward by the key, wrapping around the
// alphabet, and collects the result into a Ciphertext of the same length.
func (Cipher) Encrypt(msg Message, key Key) Ciphertext {
	elements := make([]ring.Element, len(msg.elements))
	for i, e := range msg.elements {
		elements[i] = e.Add(key.k)
	}
	return Ciphertext{elements: elements}
}

// Decrypt shifts every letter of ct backward by the key, recovering the
// Message that Encrypt produced ct from — provided key is the key that was
// used.
//
// Decrypting with a wrong key is not an error: it succeeds and yields some
// message, generally unrelated to the original. With only 26 possible keys
// an attacker simply tries them all (see [Cipher.BruteForce]), and because
// the transform is a translation, repeated-letter patterns survive under
// every key. That behavior is intrinsic to the cipher's definition and is
// preserved here, not detected or "fixed".
func (Cipher) Decrypt(ct Ciphertext, key Key) Message {
	elements := make([]ring.Element, len(ct.elements))
	for i, e := range ct.elements {
		elements[i] = e.Sub(key.k)
	}
	return Message{elements: elements}
}

// GenerateKey implements [cipher.KeyGenerator] by delegating to the
// package-level [GenerateKey].
func (Cipher) GenerateKey(rand io.Reader) (Key, error) {
	return GenerateKey(rand)
}

// BruteForce decrypts ct under every key in the keyspace and returns the 26
// candidate plaintexts, indexed by key value: candidate i is the decryption
// under key i. Picking out the real plaintext is left to the reader — for
// messages of any length, usually exactly one candidate reads as language.
func (c Cipher) BruteForce(ct Ciphertext) []Message {
	candidates := make([]Message, ring.Modulus)
	for n := range candidates {
		candidates[n] = c.Decrypt(ct, Key{k: ring.FromInt(n)})
	}
	return candidates
}
