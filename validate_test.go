package sahha

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"amine@example.com", true},
		{"a.b+c@sub.domain.dz", true},
		{"UPPER@EXAMPLE.COM", true},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidEmail(tt.email), "email %q", tt.email)
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"0551234567", true},
		{"+213551234567", true},
		{"0661234567", true},
		{"0771234567", true},
		{"055 123 45 67", true}, // spaces stripped before matching
		{"123", false},
		{"0451234567", false},  // prefix outside 5-7
		{"05512345678", false}, // too long
		{"055123456", false},   // too short
		{"+21355123456", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidPhoneNumber(tt.phone), "phone %q", tt.phone)
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"abcd1234", true},
		{"abcdefgh", false}, // no digit
		{"12345678", false}, // no letter
		{"short1", false},   // too short
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidPassword(tt.password), "password %q", tt.password)
	}
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		name         string
		password     string
		wantLabel    string
		wantProgress float64
	}{
		{"empty", "", StrengthVeryWeak, 0.1},
		{"one criterion", "aaaa", StrengthWeak, 0.33},
		{"two criteria", "aaaaaaaa", StrengthWeak, 0.33},
		// exactly 3: len>=8, lower, digit
		{"three criteria", "aaaa1111", StrengthMedium, 0.66},
		// exactly 4: len>=8, upper, lower, digit
		{"four criteria", "Aaaa1111", StrengthMedium, 0.66},
		// exactly 5: len>=8, len>=12, upper, lower, digit
		{"five criteria", "Aaaa11112222", StrengthStrong, 1.0},
		// all 6
		{"six criteria", "Aaaa1111!!!!", StrengthStrong, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, progress := PasswordStrength(tt.password)
			assert.Equal(t, tt.wantLabel, label)
			assert.InDelta(t, tt.wantProgress, progress, 0.001)
		})
	}
}
