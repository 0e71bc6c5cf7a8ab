package availability

import "leadgrid/internal/domain"

// Matches reports whether a single rule's geographic predicate applies to the
// address. Empty optional rule fields act as wildcards. Unknown rule types
// never match.
func Matches(r domain.AvailabilityRule, a domain.Address) bool {
	if !r.Active {
		return false
	}

	rulePLZ := NormalizePostalCode(r.PostalCode)
	if rulePLZ != "" && rulePLZ != NormalizePostalCode(a.PostalCode) {
		return false
	}
	if city := Normalize(r.City); city != "" && city != Normalize(a.City) {
		return false
	}

	switch r.Type {
	case domain.RuleTypePostalCode:
		// The type only scopes a rule to a whole postal area; without a
		// postal code it can never match anything.
		return rulePLZ != ""

	case domain.RuleTypeStreetRange:
		street := NormalizeStreet(r.Street)
		if street == "" || street != NormalizeStreet(a.Street) {
			return false
		}
		if r.HouseNumberFrom == nil && r.HouseNumberTo == nil {
			return true
		}
		n, ok := HouseNumber(a.HouseNumber)
		if !ok {
			return false
		}
		lo, hi := rangeBounds(r.HouseNumberFrom, r.HouseNumberTo)
		return (lo == nil || n >= *lo) && (hi == nil || n <= *hi)
	}

	return false
}

// rangeBounds orders a street range's bounds; authors may store them either
// way round. A nil bound stays nil (unbounded on that side).
func rangeBounds(from, to *int) (lo, hi *int) {
	if from != nil && to != nil && *from > *to {
		return to, from
	}
	return from, to
}
