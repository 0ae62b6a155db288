// Package cipher defines the interfaces shared by the classical ciphers in
// this module. A single variant ships today — the Latin Shift Cipher in the
// shift package — but the interfaces are written so that future ciphers over
// the same alphabet (Affine, Substitution) can implement them without any
// change to callers.
package cipher

import "io"

// Cipher is the interface satisfied by a deterministic symmetric cipher with
// message space M, ciphertext space C and key space K.
//
// Implementations must be pure and total: Encrypt and Decrypt always succeed
// for valid inputs, and for every key k and message m,
//
//	Decrypt(Encrypt(m, k), k) == m
//
// Note that nothing requires decryption with a *wrong* key to fail; for the
// classical ciphers it succeeds and yields some unrelated message.
type Cipher[M, C, K any] interface {
	// Encrypt transforms a message into a ciphertext under key.
	Encrypt(msg M, key K) C

	// Decrypt inverts Encrypt for the key that produced ct.
	Decrypt(ct C, key K) M
}

// KeyGenerator is implemented by ciphers that can draw a key uniformly at
// random from their key space. The random source is supplied by the caller
// (crypto/rand.Reader in production, a seeded stream in tests) so that
// implementations never hide a global generator.
type KeyGenerator[K any] interface {
	GenerateKey(rand io.Reader) (K, error)
}
