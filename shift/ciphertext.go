package shift

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-classical-crypto/ring"
)

// Ciphertext is an encrypted text for the Latin Shift Cipher. It has the
// same representation as [Message] — an ordered sequence of canonical ring
// elements — but is a distinct nominal type so that ciphertexts cannot be
// fed back into Encrypt by accident.
//
// Ciphertexts render in UPPERCASE by convention. The convention is not
// enforced on input: parsing accepts any mix of cases and discards the
// original casing.
type Ciphertext struct {
	elements []ring.Element
}

// ParseCiphertext parses a ciphertext from a string of Latin letters. The
// input is case-folded to lowercase before decoding, so "HPHT", "hpht" and
// "HpHt" all parse to the same Ciphertext. The empty string parses to the
// empty Ciphertext.
//
// Any non-letter fails with an error wrapping [ErrInvalidCiphertext] that
// names the offending character and its position (in the folded string).
func ParseCiphertext(s string) (Ciphertext, error) {
	elements, err := parseElements(strings.ToLower(s))
	if err != nil {
		return Ciphertext{}, fmt.Errorf("%w: %v", ErrInvalidCiphertext, err)
	}
	return Ciphertext{elements: elements}, nil
}

// String renders the ciphertext in uppercase, regardless of how it was
// parsed. ParseCiphertext(s).String() equals strings.ToUpper(s) for any
// valid ASCII input s.
func (c Ciphertext) String() string {
	return strings.ToUpper(renderLower(c.elements))
}

// Len returns the number of letters in the ciphertext.
func (c Ciphertext) Len() int {
	return len(c.elements)
}

// Equal reports whether c and other are elementwise equal.
func (c Ciphertext) Equal(other Ciphertext) bool {
	return slices.Equal(c.elements, other.elements)
}

// MarshalJSON encodes the ciphertext as its uppercase rendering.
func (c Ciphertext) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a JSON string and parses it with [ParseCiphertext];
// any case mix is accepted.
func (c *Ciphertext) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCiphertext, err)
	}
	parsed, err := ParseCiphertext(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the ciphertext as its uppercase rendering.
func (c Ciphertext) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalYAML decodes a YAML scalar and parses it with [ParseCiphertext].
func (c *Ciphertext) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCiphertext, err)
	}
	parsed, err := ParseCiphertext(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
