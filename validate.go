package sahha

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailPattern = regexp.MustCompile(`^[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`)
	// Algerian mobile numbers: +213 or 0, then an operator prefix 5-7 and
	// eight digits.
	phonePattern = regexp.MustCompile(`^(\+213|0)[5-7][0-9]{8}$`)
)

// IsValidEmail reports whether s looks like a local@domain address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPhoneNumber reports whether s is an Algerian mobile number. Spaces
// are stripped before matching.
func IsValidPhoneNumber(s string) bool {
	return phonePattern.MatchString(strings.ReplaceAll(s, " ", ""))
}

// IsValidPassword reports whether s meets the minimum policy: at least 8
// characters with at least one letter and one digit.
func IsValidPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// Strength labels returned by PasswordStrength.
const (
	StrengthVeryWeak = "very weak"
	StrengthWeak     = "weak"
	StrengthMedium   = "medium"
	StrengthStrong   = "strong"
)

// passwordSymbols are the characters counted as symbols by PasswordStrength.
const passwordSymbols = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// PasswordStrength scores a password against six criteria (length >= 8,
// length >= 12, upper, lower, digit, symbol) and maps the sum to a bucket.
// The labels and progress values are a UI contract: progress drives the
// strength meter directly.
//
//	0 criteria   -> "very weak", 0.1
//	1-2 criteria -> "weak",      0.33
//	3-4 criteria -> "medium",    0.66
//	5-6 criteria -> "strong",    1.0
func PasswordStrength(s string) (label string, progress float64) {
	score := 0

	if len(s) >= 8 {
		score++
	}
	if len(s) >= 12 {
		score++
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	for _, ok := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if ok {
			score++
		}
	}

	switch {
	case score == 0:
		return StrengthVeryWeak, 0.1
	case score <= 2:
		return StrengthWeak, 0.33
	case score <= 4:
		return StrengthMedium, 0.66
	default:
		return StrengthStrong, 1.0
	}
}
