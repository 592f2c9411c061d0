package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"two words@example.com", false},
		{"@example.com", false},
		{"user@", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmail(tt.email))
		})
	}
}

func TestIsPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+33612345678", true},
		{"0612345678", true},
		{"123456", false},
		{"not a phone", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPhone(tt.phone))
		})
	}
}

func TestValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"long with special char", "correct-horse!battery", true},
		{"exactly eight with special", "abcdefg!", true},
		{"too short", "ab!c", false},
		{"long but no special char", "abcdefghijk", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPassword(tt.password))
		})
	}
}

func TestValidator(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())
	assert.Equal(t, "", v.First())

	v.Check(false, "email", "email is required")
	v.Check(true, "name", "never recorded")
	v.Check(false, "amount", "amount must be positive")

	assert.False(t, v.Valid())
	assert.Len(t, v.Errors, 2)
	assert.Equal(t, "email is required", v.First())
}
