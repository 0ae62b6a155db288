package shift

import (
	"fmt"
	"io"
	"strconv"

	"github.com/hasbyte1/go-classical-crypto/ring"
)

// Key is a cryptographic key for the Latin Shift Cipher: a single ring
// element, i.e. an integer in [0, 25].
//
// Key is algebraically the same ring as the message symbols but kept as a
// distinct type so key material cannot be mixed into plaintext or ciphertext
// arithmetic. It deliberately implements no JSON, YAML or text marshalers,
// and its String method is redacted; the only way to read the value out is
// [Key.InsecureExport].
type Key struct {
	k ring.Element
}

// GenerateKey draws a key uniformly at random from the full 26-element
// keyspace, consuming entropy from rand (pass crypto/rand.Reader in
// production, or a prng.Reader for reproducible tests).
//
// A key of 0 — under which encryption is the identity transform — is a valid
// outcome. The cipher's mathematical definition includes it, so it is drawn
// with the same probability as every other key and never re-rolled.
func GenerateKey(rand io.Reader) (Key, error) {
	e, err := ring.Random(rand)
	if err != nil {
		return Key{}, fmt.Errorf("shift: failed to generate key: %w", err)
	}
	return Key{k: e}, nil
}

// ParseKey parses a key from a base-10 integer string.
//
// Unlike message and ciphertext parsing, ParseKey range-checks instead of
// reducing: the integer must already lie in [0, 25]. "25" parses, "26" and
// "-1" fail with [ErrKeyOutOfRange]; non-numeric input fails with
// [ErrInvalidKey].
func ParseKey(s string) (Key, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	if n < 0 || n >= ring.Modulus {
		return Key{}, fmt.Errorf("%w: got %d", ErrKeyOutOfRange, n)
	}
	return Key{k: ring.FromInt(n)}, nil
}

// Equal reports whether k and other are the same key.
func (k Key) Equal(other Key) bool {
	return k.k == other.k
}

// InsecureExport renders the key's value as a decimal string, e.g. "11".
//
// The name is the warning: the result is the secret itself, with no
// protection of any kind. Callers own the consequences of logging, storing
// or displaying it.
func (k Key) InsecureExport() string {
	return strconv.Itoa(k.k.Int())
}

// String implements fmt.Stringer with a fixed placeholder, so formatting a
// Key with %v, %s or friends cannot leak the value. Use [Key.InsecureExport]
// when the value is genuinely wanted.
func (k Key) String() string {
	return "shift.Key(redacted)"
}
