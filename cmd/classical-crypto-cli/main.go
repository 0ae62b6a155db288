// Command classical-crypto-cli is an interactive demonstration of the Latin
// Shift Cipher. It drives the shift package from a terminal menu: generate a
// key, encrypt a message, decrypt a ciphertext with a known key, or brute
// force a ciphertext across the whole 26-key space.
//
// All cryptographic behavior lives in the library; this command only reads
// lines, re-prompts on invalid input and prints results.
package main

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hasbyte1/go-classical-crypto/shift"
)

const appName = "classical-crypto-cli"

const mainMenu = `
Please enter one of the following options:
1: Generate a key.
2: Encrypt a message.
3: Decrypt a ciphertext.
4: Quit.
`

const decryptMenu = `
Please enter one of the following options:
1: Decrypt with a known key.
2: Brute force: print the plaintext candidate for every possible key.
3: Return to the main menu.
`

func main() {
	if err := run(os.Stdin, os.Stdout, rand.Reader); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

// session holds the I/O of one interactive run. The reader, writer and
// random source are injected so tests can script an entire session.
type session struct {
	in     *bufio.Scanner
	out    io.Writer
	rng    io.Reader
	cipher shift.Cipher
}

// run drives the main menu loop until the user quits or input is exhausted.
// It returns an error only for failures the user cannot fix by retyping,
// i.e. a failing random source.
func run(in io.Reader, out io.Writer, rng io.Reader) error {
	s := &session{in: bufio.NewScanner(in), out: out, rng: rng}
	for {
		choice, ok := s.prompt(mainMenu)
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			if err := s.generateKey(); err != nil {
				return err
			}
		case "2":
			if !s.encrypt() {
				return nil
			}
		case "3":
			if !s.decrypt() {
				return nil
			}
		case "4":
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(s.out, "Unrecognized option; please try again.")
		}
	}
}

// prompt prints msg and returns the next input line, trimmed. ok is false
// when input is exhausted.
func (s *session) prompt(msg string) (line string, ok bool) {
	fmt.Fprint(s.out, msg)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// generateKey draws a fresh key and reveals it only after explicit consent.
func (s *session) generateKey() error {
	key, err := shift.GenerateKey(s.rng)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "We generated a key for you.")
	for {
		answer, ok := s.prompt("Would you like to see the key? (y/n)\n")
		if !ok {
			return nil
		}
		switch answer {
		case "y":
			fmt.Fprintf(s.out, "Here is your key: %s\n", key.InsecureExport())
			fmt.Fprintln(s.out, "Keep it somewhere safe — anyone holding it can decrypt your messages.")
			return nil
		case "n":
			fmt.Fprintln(s.out, "The key stays hidden.")
			return nil
		default:
			fmt.Fprintln(s.out, "Please answer y or n.")
		}
	}
}

// encrypt prompts for a message and a key and prints the ciphertext.
// The return value is false when input is exhausted mid-dialogue.
func (s *session) encrypt() bool {
	msg, ok := s.promptMessage()
	if !ok {
		return false
	}
	key, ok := s.promptKey()
	if !ok {
		return false
	}
	fmt.Fprintf(s.out, "Your ciphertext is: %s\n", s.cipher.Encrypt(msg, key))
	return true
}

// decrypt prompts for a ciphertext, then runs one choice from the
// decryption menu: known key, brute force, or back.
func (s *session) decrypt() bool {
	ct, ok := s.promptCiphertext()
	if !ok {
		return false
	}
	for {
		choice, ok := s.prompt(decryptMenu)
		if !ok {
			return false
		}
		switch choice {
		case "1":
			key, ok := s.promptKey()
			if !ok {
				return false
			}
			fmt.Fprintf(s.out, "Your plaintext candidate is: %s\n", s.cipher.Decrypt(ct, key))
			return true
		case "2":
			fmt.Fprintln(s.out, "Plaintext candidates for every possible key:")
			for n, candidate := range s.cipher.BruteForce(ct) {
				fmt.Fprintf(s.out, "key %2d: %s\n", n, candidate)
			}
			return true
		case "3":
			return true
		default:
			fmt.Fprintln(s.out, "Unrecognized option; please try again.")
		}
	}
}

func (s *session) promptMessage() (shift.Message, bool) {
	for {
		line, ok := s.prompt("Please enter your message (lowercase letters only):\n")
		if !ok {
			return shift.Message{}, false
		}
		msg, err := shift.ParseMessage(line)
		if err != nil {
			fmt.Fprintf(s.out, "That didn't work: %v\nPlease try again.\n", err)
			continue
		}
		return msg, true
	}
}

func (s *session) promptCiphertext() (shift.Ciphertext, bool) {
	for {
		line, ok := s.prompt("Please enter the ciphertext (letters only, any case):\n")
		if !ok {
			return shift.Ciphertext{}, false
		}
		ct, err := shift.ParseCiphertext(line)
		if err != nil {
			fmt.Fprintf(s.out, "That didn't work: %v\nPlease try again.\n", err)
			continue
		}
		return ct, true
	}
}

func (s *session) promptKey() (shift.Key, bool) {
	for {
		line, ok := s.prompt("Please enter the key (a number from 0 to 25):\n")
		if !ok {
			return shift.Key{}, false
		}
		key, err := shift.ParseKey(line)
		if err != nil {
			fmt.Fprintf(s.out, "That didn't work: %v\nPlease try again.\n", err)
			continue
		}
		return key, true
	}
}
