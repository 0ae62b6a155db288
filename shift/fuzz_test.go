package shift_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/hasbyte1/go-classical-crypto/shift"
)

// FuzzParseMessage ensures ParseMessage never panics, fails only with the
// documented sentinel, and round-trips exactly when it succeeds.
//
// Run with: go test -fuzz=FuzzParseMessage ./shift/
func FuzzParseMessage(f *testing.F) {
	for _, s := range []string{"", "a", "wewillmeetatmidnight", "Hello World", "a;k", "naïve"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		msg, err := shift.ParseMessage(s)
		if err != nil {
			if !errors.Is(err, shift.ErrInvalidMessage) {
				t.Fatalf("unexpected error type: %v", err)
			}
			return
		}
		if got := msg.String(); got != s {
			t.Fatalf("round-trip mismatch: parsed %q, rendered %q", s, got)
		}
	})
}

// FuzzParseCiphertext ensures ParseCiphertext never panics and that any
// successfully parsed ciphertext survives a render/re-parse cycle.
func FuzzParseCiphertext(f *testing.F) {
	for _, s := range []string{"", "HPHTWWXPPELEXTOYTRSE", "HpHt", "a;k", "HPH T"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		ct, err := shift.ParseCiphertext(s)
		if err != nil {
			if !errors.Is(err, shift.ErrInvalidCiphertext) {
				t.Fatalf("unexpected error type: %v", err)
			}
			return
		}
		back, err := shift.ParseCiphertext(ct.String())
		if err != nil {
			t.Fatalf("re-parsing rendered ciphertext %q failed: %v", ct.String(), err)
		}
		if !back.Equal(ct) {
			t.Fatalf("render/re-parse mismatch for input %q", s)
		}
	})
}

// FuzzEncryptDecrypt checks the cipher's defining invariant
// Decrypt(Encrypt(m, k), k) == m across fuzzed messages and keys.
func FuzzEncryptDecrypt(f *testing.F) {
	f.Add("wewillmeetatmidnight", uint8(11))
	f.Add("", uint8(0))
	f.Add("dad", uint8(25))
	f.Fuzz(func(t *testing.T, s string, keyByte uint8) {
		msg, err := shift.ParseMessage(s)
		if err != nil {
			t.Skip("not a valid message")
		}
		key, err := shift.ParseKey(strconv.Itoa(int(keyByte % 26)))
		if err != nil {
			t.Fatalf("reduced key must always parse: %v", err)
		}

		c := shift.Cipher{}
		ct := c.Encrypt(msg, key)
		if ct.Len() != msg.Len() {
			t.Fatalf("encryption changed length: %d -> %d", msg.Len(), ct.Len())
		}
		if got := c.Decrypt(ct, key); !got.Equal(msg) {
			t.Fatalf("round-trip mismatch: %q -> %q", s, got.String())
		}
	})
}
