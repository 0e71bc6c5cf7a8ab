package availability

import (
	"fmt"
	"strings"

	"leadgrid/internal/domain"
)

// FormatRuleScope renders a rule's geographic scope for display, using the
// fields as authored (not normalized). Empty parts are omitted.
func FormatRuleScope(r domain.AvailabilityRule) string {
	switch r.Type {
	case domain.RuleTypePostalCode:
		out := strings.TrimSpace(r.City)
		if code := strings.TrimSpace(r.PostalCode); code != "" {
			out = joinNonEmpty(" ", "PLZ "+code, out)
		}
		return out

	case domain.RuleTypeStreetRange:
		var span string
		switch {
		case r.HouseNumberFrom != nil && r.HouseNumberTo != nil:
			span = fmt.Sprintf("%d–%d", *r.HouseNumberFrom, *r.HouseNumberTo)
		case r.HouseNumberFrom != nil:
			span = fmt.Sprintf("ab %d", *r.HouseNumberFrom)
		case r.HouseNumberTo != nil:
			span = fmt.Sprintf("bis %d", *r.HouseNumberTo)
		}
		left := joinNonEmpty(" ", strings.TrimSpace(r.Street), span)
		right := joinNonEmpty(" ", strings.TrimSpace(r.PostalCode), strings.TrimSpace(r.City))
		return joinNonEmpty(", ", left, right)
	}
	return ""
}

// FormatAddress renders a stored address record as
// "{street} {housenumber}{suffix}, {zip} {city}".
func FormatAddress(rec domain.AddressRecord) string {
	left := joinNonEmpty(" ",
		strings.TrimSpace(rec.Street),
		fmt.Sprintf("%d%s", rec.HouseNumber, strings.TrimSpace(rec.Suffix)),
	)
	right := joinNonEmpty(" ", strings.TrimSpace(rec.PostalCode), strings.TrimSpace(rec.City))
	return joinNonEmpty(", ", left, right)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
