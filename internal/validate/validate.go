package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// German PLZ: exactly 5 digits
	rePLZ     = regexp.MustCompile(`^[0-9]{5}$`)
	reEmail   = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID      = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reHouseNo = regexp.MustCompile(`^[0-9]{1,5}[A-Za-z]?$`)
	reEffect  = regexp.MustCompile(`^(allow|deny)$`)
	reType    = regexp.MustCompile(`^(postal-code|street-range)$`)
)

// PLZ validates a strict German postal code for stored records. Query-side
// postal codes are normalized by the engine, not rejected here.
func PLZ(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 5 {
		return "", false
	}
	return s, rePLZ.MatchString(s)
}

// OptionalPLZ accepts an empty value (rule wildcard) or a valid PLZ.
func OptionalPLZ(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	return PLZ(s)
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// ID validates a simple resource identifier (product/rule/address ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// HouseNo validates a stored house number with optional letter suffix ("12a").
func HouseNo(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reHouseNo.MatchString(s)
}

// Name validates a displayable name (street, city, product) with a sane cap.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 80 {
		return "", false
	}
	return s, true
}

// RuleEffect validates the allow/deny enum.
func RuleEffect(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reEffect.MatchString(s)
}

// RuleType validates the rule type enum.
func RuleType(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reType.MatchString(s)
}

// Priority parses a rule priority, falling back to 0 for absent or junk
// input rather than failing. Clamped so a typo cannot outrank everything.
func Priority(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	if n < -1000 {
		return -1000
	}
	if n > 1000 {
		return 1000
	}
	return n
}

// Bound parses an optional house-number bound; nil means unbounded.
func Bound(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

// Password enforces a simple complexity window for login checks.
func Password(s string) bool {
	l := len(s)
	if l < 8 || l > 20 {
		return false
	}
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			hasLower = true
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasLower && hasUpper && hasDigit && hasSymbol
}
