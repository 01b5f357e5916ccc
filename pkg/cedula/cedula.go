// Package cedula validates Dominican national identifiers (cédula / RNC of
// natural persons): eleven digits where the last one is a Luhn-style check
// digit over the first ten.
package cedula

import (
	"errors"
	"strings"
)

// Length is the number of digits in a normalized identifier.
const Length = 11

var (
	ErrLength     = errors.New("identifier must have 11 digits")
	ErrCheckDigit = errors.New("identifier check digit is incorrect")
)

var weights = [Length - 1]int{1, 2, 1, 2, 1, 2, 1, 2, 1, 2}

// Normalize drops every non-digit character, so "001-1234567-3" becomes
// "00112345673".
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate normalizes s and checks its length and check digit.
func Validate(s string) error {
	digits := Normalize(s)
	if len(digits) != Length {
		return ErrLength
	}
	if CheckDigit(digits[:Length-1]) != int(digits[Length-1]-'0') {
		return ErrCheckDigit
	}
	return nil
}

// Valid reports whether s is a well-formed identifier.
func Valid(s string) bool {
	return Validate(s) == nil
}

// CheckDigit computes the check digit for the first ten digits of an
// identifier. Products of two digits are reduced to the sum of their digits.
func CheckDigit(first10 string) int {
	sum := 0
	for i := 0; i < len(weights) && i < len(first10); i++ {
		p := int(first10[i]-'0') * weights[i]
		sum += p/10 + p%10
	}
	return (10 - sum%10) % 10
}
