// Package shift implements the classical Latin Shift Cipher over the ring of
// integers modulo 26 (see the ring package): every letter of the plaintext
// is shifted by a fixed key amount, wrapping around the alphabet.
//
// # Types
//
// The package keeps its three value spaces nominally distinct even though
// they share the same underlying representation:
//
//   - [Message] — plaintext; parsed from lowercase letters, rendered lowercase.
//   - [Ciphertext] — parsed case-insensitively, rendered UPPERCASE (following
//     the convention in Stinson, Cryptography: Theory and Practice).
//   - [Key] — a single ring element in [0, 25].
//
// The distinct types make misuse a compile error: a Ciphertext cannot be
// encrypted, a Message cannot be decrypted, and a Key cannot wander into
// message arithmetic.
//
// # Quick start
//
//	key, err := shift.GenerateKey(rand.Reader)
//	msg, err := shift.ParseMessage("wewillmeetatmidnight")
//
//	c := shift.Cipher{}
//	ct := c.Encrypt(msg, key)      // e.g. "HPHTWWXPPELEXTOYTRSE" for key 11
//	pt := c.Decrypt(ct, key)       // recovers msg exactly
//
// # Security notes
//
// This cipher is a teaching tool, not a security mechanism:
//
//   - The keyspace has exactly 26 elements, so brute force is trivial —
//     [Cipher.BruteForce] does it in one call.
//   - Decrypting with a wrong key does not fail; it produces some unrelated
//     message. That is intrinsic to the cipher's definition, and because the
//     transform is a translation, letter patterns survive under every key.
//   - A key of 0 is valid (encryption is then the identity); the uniform
//     distribution over the keyspace includes it and it is not special-cased.
//   - [Key] never exposes its value through fmt verbs or marshaling; the one
//     deliberate exit is [Key.InsecureExport], named to flag the leak.
package shift
