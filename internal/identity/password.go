package identity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lower   = "abcdefghijklmnopqrstuvwxyz"
	digits  = "0123456789"
	symbols = "!@#$%^&*"

	PasswordAlphabet  = upper + lower + digits + symbols
	MinPasswordLength = 7
	// DefaultPasswordLength is what onboarding hands out.
	DefaultPasswordLength = 12
)

// GeneratePassword returns a random password drawn from PasswordAlphabet.
// Lengths below MinPasswordLength are raised to it. Passwords of eight or
// more characters contain at least one character from each class.
func GeneratePassword(length int) (string, error) {
	if length < MinPasswordLength {
		length = MinPasswordLength
	}

	out := make([]byte, 0, length)
	if length >= 8 {
		for _, class := range []string{upper, lower, digits, symbols} {
			c, err := pick(class)
			if err != nil {
				return "", err
			}
			out = append(out, c)
		}
	}
	for len(out) < length {
		c, err := pick(PasswordAlphabet)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	if err := shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

// IsGeneratedPassword reports whether s could have come from
// GeneratePassword.
func IsGeneratedPassword(s string) bool {
	if len(s) < MinPasswordLength {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(PasswordAlphabet, r) {
			return false
		}
	}
	return true
}

func pick(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, fmt.Errorf("generate password: %w", err)
	}
	return set[n.Int64()], nil
}

func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
		j := n.Int64()
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
