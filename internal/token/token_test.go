package token

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateIsIdempotent(t *testing.T) {
	first := Generate("john@example.com")
	second := Generate("john@example.com")

	assert.Equal(t, first, second)
}

func TestGenerateShape(t *testing.T) {
	tok := Generate("jane@example.com")

	assert.Len(t, tok, Length)
	assert.True(t, Valid(tok))
}

func TestGenerateIsCaseSensitive(t *testing.T) {
	assert.NotEqual(t, Generate("John@Example.com"), Generate("john@example.com"))
}

func TestGenerateHasNoCollisionsAtDonorListScale(t *testing.T) {
	seen := make(map[string]string, 50000)
	for i := 0; i < 50000; i++ {
		email := fmt.Sprintf("donor%d@foodbank.org", i)
		tok := Generate(email)
		if other, ok := seen[tok]; ok {
			t.Fatalf("token %s shared by %s and %s", tok, other, email)
		}
		seen[tok] = email
	}
}

func TestGenerateSalted(t *testing.T) {
	email := "sam@example.com"

	assert.Equal(t, Generate(email), GenerateSalted(email, 0))
	assert.NotEqual(t, Generate(email), GenerateSalted(email, 1))
	assert.NotEqual(t, GenerateSalted(email, 1), GenerateSalted(email, 2))
	assert.Equal(t, GenerateSalted(email, 3), GenerateSalted(email, 3))
	assert.Len(t, GenerateSalted(email, 4), Length)
}

func TestValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"abcXYZ012345", true},
		{"a", true},
		{"", false},
		{"abc-def", false},
		{"../etc/passwd", false},
		{"abc def", false},
		{string(make([]byte, 65)), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Valid(tc.in), "input %q", tc.in)
	}
}
