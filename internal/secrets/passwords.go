package secrets

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Character classes used by GeneratePassword.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Symbols   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// DefaultPasswordLength is the length of generated entry passwords.
const DefaultPasswordLength = 12

// PasswordPolicy selects which character classes a generated password uses.
// Every enabled class appears at least once.
type PasswordPolicy struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Digits    bool
	Symbols   bool
}

// DefaultPasswordPolicy returns a policy using every class and no spaces.
func DefaultPasswordPolicy(length int) PasswordPolicy {
	if length <= 0 {
		length = DefaultPasswordLength
	}
	return PasswordPolicy{
		Length:    length,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

func (p PasswordPolicy) classes() []string {
	var classes []string
	if p.Lowercase {
		classes = append(classes, Lowercase)
	}
	if p.Uppercase {
		classes = append(classes, Uppercase)
	}
	if p.Digits {
		classes = append(classes, Digits)
	}
	if p.Symbols {
		classes = append(classes, Symbols)
	}
	return classes
}

// GeneratePassword returns a random password satisfying the policy.
func GeneratePassword(p PasswordPolicy) ([]byte, error) {
	classes := p.classes()
	if len(classes) == 0 {
		return nil, fmt.Errorf("password policy enables no character classes")
	}
	if p.Length < len(classes) {
		return nil, fmt.Errorf("password length %d cannot hold %d character classes", p.Length, len(classes))
	}

	var all string
	for _, c := range classes {
		all += c
	}

	out := make([]byte, p.Length)
	// One character from each class first, then fill and shuffle.
	for i, c := range classes {
		b, err := pick(c)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	for i := len(classes); i < p.Length; i++ {
		b, err := pick(all)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	for i := len(out) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return nil, err
		}
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func pick(charset string) (byte, error) {
	i, err := randInt(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}
