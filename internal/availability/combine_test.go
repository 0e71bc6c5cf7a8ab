package availability

import (
	"reflect"
	"testing"

	"leadgrid/internal/domain"
)

var statuses = []domain.AvailabilityStatus{
	{ID: "st-av", Value: domain.StatusAvailable},
	{ID: "st-pl", Value: domain.StatusPlanned},
	{ID: "st-un", Value: domain.StatusUnavailable},
}

func seeRecord() domain.AddressRecord {
	return domain.AddressRecord{
		ID: "adr-1", Street: "Seestraße", HouseNumber: 8,
		PostalCode: "78462", City: "Konstanz",
	}
}

func TestCombineDirectMappingOverridesRule(t *testing.T) {
	// Rule inference allows fiber-1000 too, but the recorded "planned" fact
	// must win for that product.
	snap := Snapshot{
		Products:       catalog,
		Rules:          []domain.AvailabilityRule{allowPLZ("a", "78462", 0, "fiber-1000")},
		AddressRecords: []domain.AddressRecord{seeRecord()},
		Mappings: []domain.AvailabilityMapping{
			{ID: "m1", AddressID: "adr-1", ProductID: "fiber-1000", StatusID: "st-pl"},
		},
		Statuses: statuses,
	}
	res := Combine(seestr, snap)
	if !res.HasDirectMapping {
		t.Fatal("expected direct mapping")
	}
	if len(res.Products) != 1 {
		t.Fatalf("products = %+v", res.Products)
	}
	p := res.Products[0]
	if p.Source != SourceDirect || !p.IsPlanned || p.IsAvailable {
		t.Fatalf("direct mapping should win: %+v", p)
	}
	if !res.IsServiceable {
		t.Fatal("planned counts as serviceable")
	}
}

func TestCombineRuleOnlyProductsAppended(t *testing.T) {
	snap := Snapshot{
		Products:       catalog,
		Rules:          []domain.AvailabilityRule{allowPLZ("a", "78462", 0, "fiber-1000", "dsl-100")},
		AddressRecords: []domain.AddressRecord{seeRecord()},
		Mappings: []domain.AvailabilityMapping{
			{ID: "m1", AddressID: "adr-1", ProductID: "fiber-1000", StatusID: "st-un"},
		},
		Statuses: statuses,
	}
	res := Combine(seestr, snap)
	if len(res.Products) != 2 {
		t.Fatalf("products = %+v", res.Products)
	}
	bySource := map[string]CombinedProduct{}
	for _, p := range res.Products {
		bySource[p.Source] = p
	}
	direct := bySource[SourceDirect]
	if direct.Product.ID != "fiber-1000" || direct.IsAvailable || direct.IsPlanned {
		t.Fatalf("unavailable mapping should stay unavailable: %+v", direct)
	}
	rule := bySource[SourceRule]
	if rule.Product.ID != "dsl-100" || !rule.IsAvailable {
		t.Fatalf("rule product missing: %+v", rule)
	}
	// dsl-100 keeps the address serviceable despite the confirmed outage.
	if !res.IsServiceable {
		t.Fatal("expected serviceable via rule product")
	}
}

func TestCombineRecordMatchRequiresAllFourFields(t *testing.T) {
	rec := seeRecord()
	snap := Snapshot{
		Products:       catalog,
		AddressRecords: []domain.AddressRecord{rec},
		Mappings: []domain.AvailabilityMapping{
			{ID: "m1", AddressID: "adr-1", ProductID: "fiber-1000", StatusID: "st-av"},
		},
		Statuses: statuses,
	}

	// Messy spelling of the same address still matches.
	match := domain.Address{Street: "SEE-STR.", HouseNumber: "8", PostalCode: " 78 462", City: "konstanz"}
	if res := Combine(match, snap); !res.HasDirectMapping {
		t.Fatal("normalized-equal address should find the record")
	}

	for name, addr := range map[string]domain.Address{
		"street":       {Street: "Rheinstraße", HouseNumber: "8", PostalCode: "78462", City: "Konstanz"},
		"house number": {Street: "Seestraße", HouseNumber: "9", PostalCode: "78462", City: "Konstanz"},
		"postal code":  {Street: "Seestraße", HouseNumber: "8", PostalCode: "78467", City: "Konstanz"},
		"city":         {Street: "Seestraße", HouseNumber: "8", PostalCode: "78462", City: "Radolfzell"},
	} {
		if res := Combine(addr, snap); res.HasDirectMapping {
			t.Errorf("record matched despite differing %s", name)
		}
	}
}

func TestCombineSuffixMatching(t *testing.T) {
	rec := seeRecord()
	rec.HouseNumber = 12
	rec.Suffix = "a"
	snap := Snapshot{
		Products:       catalog,
		AddressRecords: []domain.AddressRecord{rec},
		Mappings: []domain.AvailabilityMapping{
			{ID: "m1", AddressID: "adr-1", ProductID: "fiber-1000", StatusID: "st-av"},
		},
		Statuses: statuses,
	}
	with := domain.Address{Street: "Seestraße", HouseNumber: "12a", PostalCode: "78462", City: "Konstanz"}
	if !Combine(with, snap).HasDirectMapping {
		t.Fatal("suffixed house number should match")
	}
	without := with
	without.HouseNumber = "12"
	if Combine(without, snap).HasDirectMapping {
		t.Fatal("missing suffix must not match")
	}
}

func TestCombineNoRulesNoRecord(t *testing.T) {
	addr := domain.Address{Street: "Insel Mainau", HouseNumber: "1", PostalCode: "78465"}
	res := Combine(addr, Snapshot{Products: catalog})
	if res.IsServiceable || len(res.Products) != 0 || res.HasDirectMapping {
		t.Fatalf("expected empty result: %+v", res)
	}
}

func TestCombineStubsForMissingJoins(t *testing.T) {
	snap := Snapshot{
		Products:       catalog,
		AddressRecords: []domain.AddressRecord{seeRecord()},
		Mappings: []domain.AvailabilityMapping{
			{ID: "m1", AddressID: "adr-1", ProductID: "ghost-42", StatusID: "st-gone"},
		},
		Statuses: statuses,
	}
	res := Combine(seestr, snap)
	if len(res.Direct.Entries) != 1 {
		t.Fatalf("entries = %+v", res.Direct.Entries)
	}
	e := res.Direct.Entries[0]
	if !e.Product.Missing || e.Product.Name != "ghost-42" {
		t.Fatalf("missing product stub wrong: %+v", e.Product)
	}
	if e.Status.Value != domain.StatusUnknown {
		t.Fatalf("missing status should degrade to unknown: %+v", e.Status)
	}
	if res.IsServiceable {
		t.Fatal("unknown status is not serviceable")
	}
}

func TestCombineIdempotent(t *testing.T) {
	snap := Snapshot{
		Products:       catalog,
		Rules:          []domain.AvailabilityRule{allowPLZ("a", "78462", 0, "fiber-1000", "dsl-100")},
		AddressRecords: []domain.AddressRecord{seeRecord()},
		Mappings: []domain.AvailabilityMapping{
			{ID: "m1", AddressID: "adr-1", ProductID: "dsl-100", StatusID: "st-av"},
		},
		Statuses: statuses,
	}
	first := Combine(seestr, snap)
	second := Combine(seestr, snap)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("combine is not idempotent")
	}
}
