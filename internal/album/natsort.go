package album

import (
	"strings"
	"unicode"
)

// NaturalLess reports whether a sorts before b in natural order: maximal
// runs of digits compare as integers, everything else compares
// case-insensitively. "img2.jpg" sorts before "img10.jpg".
func NaturalLess(a, b string) bool {
	return compareNatural(a, b) < 0
}

func compareNatural(a, b string) int {
	for a != "" && b != "" {
		ca, ra := nextChunk(a)
		cb, rb := nextChunk(b)
		a, b = ra, rb

		aDigits := isDigit(rune(ca[0]))
		bDigits := isDigit(rune(cb[0]))

		var c int
		switch {
		case aDigits && bDigits:
			c = compareNumeric(ca, cb)
		case !aDigits && !bDigits:
			c = strings.Compare(strings.ToLower(ca), strings.ToLower(cb))
		case aDigits:
			// Digit runs order before text runs.
			return -1
		default:
			return 1
		}
		if c != 0 {
			return c
		}
	}
	if a != "" {
		return 1
	}
	if b != "" {
		return -1
	}
	return 0
}

// nextChunk splits off the leading maximal run of digits or non-digits.
func nextChunk(s string) (chunk, rest string) {
	digits := isDigit(rune(s[0]))
	for i, r := range s {
		if isDigit(r) != digits {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// compareNumeric compares two digit runs by value without overflow:
// strip leading zeros, compare lengths, then compare digit by digit.
// Equal values fall back to the raw runs so "01" and "1" stay ordered.
func compareNumeric(a, b string) int {
	ta := strings.TrimLeft(a, "0")
	tb := strings.TrimLeft(b, "0")
	if len(ta) != len(tb) {
		if len(ta) < len(tb) {
			return -1
		}
		return 1
	}
	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func isDigit(r rune) bool {
	return unicode.IsDigit(r) && r < 128
}
