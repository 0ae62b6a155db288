package shift_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-classical-crypto/shift"
)

func TestParseCiphertext_AcceptsAnyCaseMix(t *testing.T) {
	want, err := shift.ParseCiphertext("hphtwwxppelextoytrse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range []string{
		"HPHTWWXPPELEXTOYTRSE",
		"hphtwwxppelextoytrse",
		"HpHtWwXpPeLeXtOyTrSe",
	} {
		ct, err := shift.ParseCiphertext(s)
		if err != nil {
			t.Fatalf("ParseCiphertext(%q): unexpected error: %v", s, err)
		}
		if !ct.Equal(want) {
			t.Fatalf("ParseCiphertext(%q) differs; original casing must be discarded", s)
		}
	}
}

func TestCiphertext_StringIsAlwaysUppercase(t *testing.T) {
	for _, s := range []string{"HPHT", "hpht", "hPhT"} {
		ct, err := shift.ParseCiphertext(s)
		if err != nil {
			t.Fatalf("ParseCiphertext(%q): %v", s, err)
		}
		if got := ct.String(); got != "HPHT" {
			t.Fatalf("String() = %q, want %q", got, "HPHT")
		}
	}
}

func TestParseCiphertext_EmptyStringIsValid(t *testing.T) {
	ct, err := shift.ParseCiphertext("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ct.Len() != 0 || ct.String() != "" {
		t.Fatalf("empty ciphertext: Len=%d String=%q", ct.Len(), ct.String())
	}
}

func TestParseCiphertext_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"punctuation", "a;k"},
		{"interior space", "HPH T"},
		{"digit", "HPHT1"},
		{"non-ASCII", "ÄPHT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := shift.ParseCiphertext(tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, shift.ErrInvalidCiphertext) {
				t.Fatalf("errors.Is(err, ErrInvalidCiphertext) = false: %v", err)
			}
		})
	}
}

func TestCiphertext_Equal(t *testing.T) {
	a, _ := shift.ParseCiphertext("HPHT")
	b, _ := shift.ParseCiphertext("hpht")
	c, _ := shift.ParseCiphertext("HPHX")
	if !a.Equal(b) {
		t.Fatal("case must not affect equality")
	}
	if a.Equal(c) {
		t.Fatal("different ciphertexts must not be equal")
	}
}

func TestCiphertext_JSONAndYAML(t *testing.T) {
	ct, _ := shift.ParseCiphertext("HpHt")

	data, err := json.Marshal(ct)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if string(data) != `"HPHT"` {
		t.Fatalf("json.Marshal = %s, want %q rendered uppercase", data, "HPHT")
	}
	var fromJSON shift.Ciphertext
	if err := json.Unmarshal([]byte(`"hpht"`), &fromJSON); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if !fromJSON.Equal(ct) {
		t.Fatal("JSON round-trip mismatch")
	}

	out, err := yaml.Marshal(ct)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	if strings.TrimSpace(string(out)) != "HPHT" {
		t.Fatalf("yaml.Marshal = %q", out)
	}
	var fromYAML shift.Ciphertext
	if err := yaml.Unmarshal([]byte("hpht"), &fromYAML); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if !fromYAML.Equal(ct) {
		t.Fatal("YAML round-trip mismatch")
	}

	if err := json.Unmarshal([]byte(`"h p h t"`), &fromJSON); !errors.Is(err, shift.ErrInvalidCiphertext) {
		t.Fatalf("unmarshaling invalid text: errors.Is(err, ErrInvalidCiphertext) = false: %v", err)
	}
}
