package availability

import (
	"sort"

	"leadgrid/internal/domain"
)

// Resolve folds every matching rule into one set of available products.
//
// Matched rules are applied in a deterministic order: ascending priority
// first (a lower priority value is folded in earlier), then ascending
// specificity, so that among same-priority rules a broad allow (whole postal
// area) is applied before a narrow street-range override and the narrow rule
// has the final say. Remaining ties fall back to creation time, then rule id,
// which makes the fold a total order independent of input slice order.
func Resolve(addr domain.Address, rules []domain.AvailabilityRule, products []domain.Product) RuleResult {
	var matched []domain.AvailabilityRule
	for _, r := range rules {
		if Matches(r, addr) {
			matched = append(matched, r)
		}
	}

	ordered := make([]domain.AvailabilityRule, len(matched))
	copy(ordered, matched)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if sa, sb := specificity(a), specificity(b); sa != sb {
			return sa < sb
		}
		if a.CreatedAt != b.CreatedAt {
			return a.CreatedAt < b.CreatedAt
		}
		return a.ID < b.ID
	})

	allowed := map[string]bool{}
	var applied []domain.AvailabilityRule
	for _, r := range ordered {
		changed := false
		switch r.Effect {
		case domain.EffectAllow:
			for _, id := range r.ProductIDs {
				if !allowed[id] {
					allowed[id] = true
					changed = true
				}
			}
		case domain.EffectDeny:
			for _, id := range r.ProductIDs {
				if allowed[id] {
					delete(allowed, id)
					changed = true
				}
			}
		}
		if changed {
			applied = append(applied, r)
		}
	}

	ids := make([]string, 0, len(allowed))
	for id := range allowed {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	catalog := make(map[string]domain.Product, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}

	var out []ResolvedProduct
	for _, id := range ids {
		rp := resolveProduct(catalog, id)
		if rp.Active {
			out = append(out, rp)
		}
	}
	col := newCollator()
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(out[i].Name, out[j].Name) < 0
	})

	return RuleResult{
		IsServiceable: len(out) > 0,
		ProductIDs:    ids,
		Products:      out,
		MatchedRules:  matched,
		AppliedRules:  applied,
	}
}

// resolveProduct looks an id up in the catalog, synthesizing an inactive stub
// for ids with no entry so callers can tell "deleted from catalog" apart from
// "excluded by rules".
func resolveProduct(catalog map[string]domain.Product, id string) ResolvedProduct {
	if p, ok := catalog[id]; ok {
		return ResolvedProduct{ID: p.ID, Name: p.Name, Active: p.Active}
	}
	return ResolvedProduct{ID: id, Name: id, Active: false, Missing: true}
}

// specificity scores how narrowly a rule's predicate is scoped. It is only a
// tie-break between rules of equal priority.
func specificity(r domain.AvailabilityRule) int {
	score := 0
	switch r.Type {
	case domain.RuleTypeStreetRange:
		score += 20
	case domain.RuleTypePostalCode:
		score += 10
	}
	if NormalizePostalCode(r.PostalCode) != "" {
		score += 5
	}
	if NormalizeStreet(r.Street) != "" {
		score += 3
	}
	if Normalize(r.City) != "" {
		score += 2
	}
	if r.HouseNumberFrom != nil || r.HouseNumberTo != nil {
		score++
	}
	return score
}
