package ring

import (
	"fmt"
	"strconv"
)

// Modulus is the order of the ring, equal to the size of the Latin alphabet.
// It is the single source of truth for the alphabet size: the encoding table,
// the arithmetic and the random sampler are all derived from it.
const Modulus = 26

// alphabet is the fixed encoding table for the Latin alphabet: the letter at
// index i encodes the ring value i ('a'→0 … 'z'→25). The table must be a
// bijection between the 26 lowercase letters and {0, …, 25}; the whole
// module's correctness depends on it, so the bijection is asserted by tests
// in both directions.
var alphabet = [Modulus]byte{
	'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm',
	'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',
}

// Element is a value in the ring ℤ/26ℤ.
//
// Elements are immutable and comparable with ==. Every Element produced by
// [FromChar], [FromInt], [Random], [Element.Add] or [Element.Sub] is
// canonical, i.e. its value lies in [0, 26). The zero value is the additive
// identity.
type Element struct {
	v int8
}

// Zero is the additive identity of the ring. It is identical to the zero
// value of [Element].
var Zero = Element{}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e == Zero
}

// FromInt reduces n to its least nonnegative residue modulo [Modulus] and
// returns the corresponding Element. The reduction is Euclidean, so the
// result is canonical for negative inputs too:
//
//	ring.FromInt(37) // value 11
//	ring.FromInt(-3) // value 23
//
// FromInt always succeeds.
func FromInt(n int) Element {
	r := n % Modulus
	if r < 0 {
		r += Modulus
	}
	return Element{v: int8(r)}
}

// FromChar maps a lowercase Latin letter to its ring value using the fixed
// encoding table. It is the only validating entry point into the ring from
// untrusted input: uppercase letters, digits, punctuation and whitespace all
// fail with an error wrapping [ErrInvalidCharacter].
func FromChar(c byte) (Element, error) {
	for i := range alphabet {
		if alphabet[i] == c {
			return Element{v: int8(i)}, nil
		}
	}
	return Element{}, fmt.Errorf("%w: %q", ErrInvalidCharacter, c)
}

// Char returns the letter encoding e under the fixed encoding table. It is
// the inverse of [FromChar].
//
// Char never fails for elements built through this package's constructors.
// If e is somehow non-canonical the encoding invariant has been broken by a
// bug in this package, and Char panics rather than returning a wrong letter.
func (e Element) Char() byte {
	if e.v < 0 || int(e.v) >= Modulus {
		panic("ring: element " + strconv.Itoa(int(e.v)) +
			" is outside the canonical range [0, 26); the encoding table or a constructor has a bug")
	}
	return alphabet[e.v]
}

// Add returns the sum of e and other in the ring.
//
// Both operands are canonical by construction, so the raw sum lies in
// [0, 51) and a single conditional subtraction replaces a full modulo.
func (e Element) Add(other Element) Element {
	sum := e.v + other.v
	if sum >= Modulus {
		sum -= Modulus
	}
	return Element{v: sum}
}

// Sub returns the difference of e and other in the ring, using a single
// conditional addition symmetric to [Element.Add].
func (e Element) Sub(other Element) Element {
	diff := e.v - other.v
	if diff < 0 {
		diff += Modulus
	}
	return Element{v: diff}
}

// Int returns the canonical integer value of e, in [0, 26).
func (e Element) Int() int {
	return int(e.v)
}

// String renders the ring value as a decimal integer. Ring elements are not
// secret material; for keys see the shift package, which redacts instead.
func (e Element) String() string {
	return strconv.Itoa(int(e.v))
}
