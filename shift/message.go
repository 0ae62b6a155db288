package shift

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-classical-crypto/ring"
)

// Message is a plaintext for the Latin Shift Cipher: an ordered sequence of
// ring elements, one per letter, of arbitrary length (including zero).
//
// A Message is immutable after construction and is built either by
// [ParseMessage] or by decrypting a [Ciphertext]. Every element is canonical
// by construction. The zero value is the empty message.
type Message struct {
	elements []ring.Element
}

// ParseMessage parses a plaintext from a string of lowercase Latin letters,
// one ring element per character with order preserved. The empty string
// parses to the empty Message.
//
// Any other character — uppercase letters, spaces, punctuation, digits —
// fails with an error wrapping [ErrInvalidMessage] that names the offending
// character and its position.
func ParseMessage(s string) (Message, error) {
	elements, err := parseElements(s)
	if err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	return Message{elements: elements}, nil
}

// String renders the plaintext as the lowercase string it was parsed from.
// It round-trips with [ParseMessage].
func (m Message) String() string {
	return renderLower(m.elements)
}

// Len returns the number of letters in the message.
func (m Message) Len() int {
	return len(m.elements)
}

// Equal reports whether m and other are elementwise equal.
func (m Message) Equal(other Message) bool {
	return slices.Equal(m.elements, other.elements)
}

// MarshalJSON encodes the message as its rendered lowercase string.
func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a JSON string and parses it with [ParseMessage],
// so invalid characters fail the same way as direct parsing.
func (m *Message) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	parsed, err := ParseMessage(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalYAML encodes the message as its rendered lowercase string.
func (m Message) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML decodes a YAML scalar and parses it with [ParseMessage].
func (m *Message) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	parsed, err := ParseMessage(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// parseElements maps each byte of s to its ring element, preserving order.
// The returned error carries the offending character and position; callers
// wrap it with the sentinel for their type.
func parseElements(s string) ([]ring.Element, error) {
	elements := make([]ring.Element, len(s))
	for i := 0; i < len(s); i++ {
		e, err := ring.FromChar(s[i])
		if err != nil {
			return nil, fmt.Errorf("character %q at position %d", s[i], i)
		}
		elements[i] = e
	}
	return elements, nil
}

// renderLower maps each element back through the alphabet encoding and
// concatenates the letters.
func renderLower(elements []ring.Element) string {
	var b strings.Builder
	b.Grow(len(elements))
	for _, e := range elements {
		b.WriteByte(e.Char())
	}
	return b.String()
}
