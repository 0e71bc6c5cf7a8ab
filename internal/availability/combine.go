package availability

import (
	"sort"

	"leadgrid/internal/domain"
)

// Combine merges rule inference with any directly recorded
// address→product→status facts for the address. Direct mappings always take
// precedence over inference for the same product: an operationally confirmed
// fact outranks a heuristic coverage rule.
func Combine(addr domain.Address, snap Snapshot) CombinedResult {
	ruleBased := Resolve(addr, snap.Rules, snap.Products)
	direct := directLookup(addr, snap)

	covered := map[string]bool{}
	var merged []CombinedProduct
	for _, e := range direct.Entries {
		covered[e.Product.ID] = true
		merged = append(merged, CombinedProduct{
			Product:     e.Product,
			Source:      SourceDirect,
			StatusValue: e.Status.Value,
			IsAvailable: e.Status.Value == domain.StatusAvailable,
			IsPlanned:   e.Status.Value == domain.StatusPlanned,
		})
	}
	for _, p := range ruleBased.Products {
		if covered[p.ID] {
			continue
		}
		merged = append(merged, CombinedProduct{
			Product:     p,
			Source:      SourceRule,
			IsAvailable: true,
		})
	}

	col := newCollator()
	sort.SliceStable(merged, func(i, j int) bool {
		return col.CompareString(merged[i].Product.Name, merged[j].Product.Name) < 0
	})

	serviceable := false
	for _, m := range merged {
		if m.IsAvailable || m.IsPlanned {
			serviceable = true
			break
		}
	}

	return CombinedResult{
		IsServiceable:    serviceable,
		Products:         merged,
		RuleBased:        ruleBased,
		Direct:           direct,
		HasDirectMapping: len(direct.Entries) > 0,
	}
}

// directLookup finds the stored record equal to the query address and joins
// its mappings to products and statuses. All four normalized fields must be
// equal; there is no partial or fuzzy matching.
func directLookup(addr domain.Address, snap Snapshot) DirectResult {
	rec := findRecord(addr, snap.AddressRecords)
	if rec == nil {
		return DirectResult{}
	}

	catalog := make(map[string]domain.Product, len(snap.Products))
	for _, p := range snap.Products {
		catalog[p.ID] = p
	}
	statuses := make(map[string]domain.AvailabilityStatus, len(snap.Statuses))
	for _, s := range snap.Statuses {
		statuses[s.ID] = s
	}

	var entries []DirectEntry
	for _, m := range snap.Mappings {
		if m.AddressID != rec.ID {
			continue
		}
		status, ok := statuses[m.StatusID]
		if !ok {
			status = domain.AvailabilityStatus{ID: m.StatusID, Value: domain.StatusUnknown}
		}
		entries = append(entries, DirectEntry{
			MappingID: m.ID,
			Product:   resolveProduct(catalog, m.ProductID),
			Status:    status,
		})
	}
	col := newCollator()
	sort.SliceStable(entries, func(i, j int) bool {
		return col.CompareString(entries[i].Product.Name, entries[j].Product.Name) < 0
	})

	return DirectResult{Record: rec, Entries: entries}
}

func findRecord(addr domain.Address, records []domain.AddressRecord) *domain.AddressRecord {
	num, suffix, numOK := houseNumberParts(addr.HouseNumber)
	street := NormalizeStreet(addr.Street)
	plz := NormalizePostalCode(addr.PostalCode)
	city := Normalize(addr.City)

	for i := range records {
		rec := records[i]
		if NormalizeStreet(rec.Street) != street {
			continue
		}
		if NormalizePostalCode(rec.PostalCode) != plz {
			continue
		}
		if Normalize(rec.City) != city {
			continue
		}
		if !numOK || rec.HouseNumber != num || Normalize(rec.Suffix) != suffix {
			continue
		}
		return &rec
	}
	return nil
}
