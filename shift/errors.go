package shift

import "errors"

// Sentinel errors returned when parsing externally supplied strings. All of
// them are recoverable: the right response is to ask for different input.
//
// Use [errors.Is] for comparisons:
//
//	_, err := shift.ParseKey(input)
//	if errors.Is(err, shift.ErrKeyOutOfRange) {
//	    // re-prompt the user
//	}
var (
	// ErrInvalidMessage is returned by [ParseMessage] when the string
	// contains a character that is not a lowercase Latin letter.
	ErrInvalidMessage = errors.New("shift: message must contain only lowercase Latin letters")

	// ErrInvalidCiphertext is returned by [ParseCiphertext] when, after case
	// folding, the string contains a character that is not a Latin letter.
	ErrInvalidCiphertext = errors.New("shift: ciphertext must contain only Latin letters")

	// ErrInvalidKey is returned by [ParseKey] when the string is not a
	// base-10 integer at all.
	ErrInvalidKey = errors.New("shift: key must be a base-10 integer")

	// ErrKeyOutOfRange is returned by [ParseKey] for integers outside
	// [0, 25]. Out-of-range keys are rejected rather than reduced mod 26: a
	// user typing "26" or "-1" is almost certainly making a mistake that
	// should surface instead of silently wrapping around.
	ErrKeyOutOfRange = errors.New("shift: key must be between 0 and 25 inclusive")
)
