// Package token derives the short public identifiers used in donor impact URLs.
package token

import (
	"crypto/sha256"
	"math/big"
	"strconv"
	"strings"
)

const (
	// Length is the number of base-62 characters kept from the digest.
	Length = 12
	// MaxAttempts bounds salted regeneration when a token collides.
	MaxAttempts = 5

	maxTokenLength = 64
)

// Generate returns the impact token for an email: SHA-256 of the email bytes,
// base-62 encoded and truncated to Length characters. The same email always
// yields the same token.
func Generate(email string) string {
	return encode([]byte(email))
}

// GenerateSalted returns an alternative token used when Generate collides
// with another donor's token. Attempt 0 is identical to Generate.
func GenerateSalted(email string, attempt int) string {
	if attempt <= 0 {
		return Generate(email)
	}
	return encode([]byte(email + "#" + strconv.Itoa(attempt)))
}

// Valid reports whether s has the shape of an impact token.
func Valid(s string) bool {
	if s == "" || len(s) > maxTokenLength {
		return false
	}
	for _, r := range s {
		if !isAlphanumeric(r) {
			return false
		}
	}
	return true
}

func encode(b []byte) string {
	sum := sha256.Sum256(b)
	s := new(big.Int).SetBytes(sum[:]).Text(62)
	if len(s) < Length {
		s = strings.Repeat("0", Length-len(s)) + s
	}
	return s[:Length]
}

func isAlphanumeric(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
