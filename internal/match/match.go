// Package match compares candidate guesses against a round's expected
// answer. All comparisons are case-insensitive and whitespace-trimmed;
// individual games layer stricter or looser policies on top.
package match

import (
	"strconv"
	"strings"
	"unicode"
)

// Fold reports whether candidate equals expected after trimming surrounding
// whitespace and case-folding both sides.
func Fold(candidate, expected string) bool {
	return normalize(candidate) == normalize(expected)
}

// Alnum reports whether candidate equals expected when only alphanumeric
// characters are considered. Used by games whose answers are song titles and
// similar free text where punctuation should not matter.
func Alnum(candidate, expected string) bool {
	return stripNonAlnum(normalize(candidate)) == stripNonAlnum(normalize(expected))
}

// Number parses candidate as an integer guess and range-checks it against
// [1, max]. Non-numeric or out-of-range input returns ok=false; it is never
// an error, such messages are simply not guesses.
func Number(candidate string, max int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(candidate))
	if err != nil {
		return 0, false
	}
	if n < 1 || n > max {
		return 0, false
	}
	return n, true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
