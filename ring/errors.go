package ring

import "errors"

// Sentinel errors returned by ring operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := ring.FromChar('A')
//	if errors.Is(err, ring.ErrInvalidCharacter) {
//	    // input was not a lowercase Latin letter
//	}
var (
	// ErrInvalidCharacter is returned by [FromChar] when the character has
	// no entry in the alphabet encoding table, i.e. it is not one of the 26
	// lowercase Latin letters.
	ErrInvalidCharacter = errors.New("ring: character is not a lowercase Latin letter")
)
