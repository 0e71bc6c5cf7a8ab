package availability

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// German sharp s and umlauts fold to their two-letter forms before any
// generic diacritic stripping, so "ä" becomes "ae" and not "a".
var umlauts = strings.NewReplacer(
	"ß", "ss",
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize produces the comparable free-text form of an address fragment:
// lowercased, trimmed, umlauts folded, remaining diacritics stripped, every
// character outside [a-z0-9 ] removed, whitespace collapsed.
func Normalize(s string) string {
	s = umlauts.Replace(strings.ToLower(strings.TrimSpace(s)))
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		case r == ' ' || r == '\t':
			space = true
		}
	}
	return b.String()
}

// NormalizeStreet additionally canonicalizes the "str" abbreviation to
// "strasse", so "Haupt-Str." and "Hauptstraße" compare equal.
func NormalizeStreet(s string) string {
	s = Normalize(s)
	switch {
	case strings.HasSuffix(s, " str"):
		s = strings.TrimSuffix(s, " str") + "strasse"
	case strings.HasSuffix(s, "str"):
		s += "asse"
	}
	return s
}

// NormalizePostalCode strips all whitespace from the free-text form.
func NormalizePostalCode(s string) string {
	return strings.ReplaceAll(Normalize(s), " ", "")
}

// HouseNumber extracts the leading numeric part of a possibly suffixed house
// number ("12a" → 12). ok is false when the string carries no digits; that is
// an expected state, not an error.
func HouseNumber(s string) (n int, ok bool) {
	num, _, ok := houseNumberParts(s)
	return num, ok
}

// houseNumberParts splits a house number into its first run of digits and the
// normalized remainder ("12 a" → 12, "a").
func houseNumberParts(s string) (n int, suffix string, ok bool) {
	s = strings.TrimSpace(s)
	start := -1
	end := len(s)
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			end = i
			break
		}
	}
	if start < 0 {
		return 0, "", false
	}
	for _, r := range s[start:end] {
		n = n*10 + int(r-'0')
	}
	return n, Normalize(s[end:]), true
}
