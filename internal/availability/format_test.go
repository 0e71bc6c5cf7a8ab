package availability

import (
	"testing"

	"leadgrid/internal/domain"
)

func TestFormatRuleScopeStreetRange(t *testing.T) {
	cases := []struct {
		rule domain.AvailabilityRule
		want string
	}{
		{
			domain.AvailabilityRule{
				Type: domain.RuleTypeStreetRange, Street: "Rheinstraße",
				HouseNumberTo: intp(20), PostalCode: "78467", City: "Konstanz",
			},
			"Rheinstraße bis 20, 78467 Konstanz",
		},
		{
			domain.AvailabilityRule{
				Type: domain.RuleTypeStreetRange, Street: "Seestraße",
				HouseNumberFrom: intp(1), HouseNumberTo: intp(10), PostalCode: "78462", City: "Konstanz",
			},
			"Seestraße 1–10, 78462 Konstanz",
		},
		{
			domain.AvailabilityRule{
				Type: domain.RuleTypeStreetRange, Street: "Seestraße",
				HouseNumberFrom: intp(12),
			},
			"Seestraße ab 12",
		},
		{
			domain.AvailabilityRule{Type: domain.RuleTypeStreetRange, Street: "Seestraße", City: "Konstanz"},
			"Seestraße, Konstanz",
		},
	}
	for _, c := range cases {
		if got := FormatRuleScope(c.rule); got != c.want {
			t.Errorf("FormatRuleScope = %q, want %q", got, c.want)
		}
	}
}

func TestFormatRuleScopePostalCode(t *testing.T) {
	r := domain.AvailabilityRule{Type: domain.RuleTypePostalCode, PostalCode: "78462", City: "Konstanz"}
	if got := FormatRuleScope(r); got != "PLZ 78462 Konstanz" {
		t.Errorf("got %q", got)
	}
	r.City = ""
	if got := FormatRuleScope(r); got != "PLZ 78462" {
		t.Errorf("got %q", got)
	}
}

func TestFormatRuleScopeUnknownType(t *testing.T) {
	if got := FormatRuleScope(domain.AvailabilityRule{Type: "geo-polygon"}); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestFormatAddress(t *testing.T) {
	rec := domain.AddressRecord{
		Street: "Seestraße", HouseNumber: 12, Suffix: "a",
		PostalCode: "78462", City: "Konstanz",
	}
	if got := FormatAddress(rec); got != "Seestraße 12a, 78462 Konstanz" {
		t.Errorf("got %q", got)
	}
	rec.Suffix = ""
	rec.City = ""
	if got := FormatAddress(rec); got != "Seestraße 12, 78462" {
		t.Errorf("got %q", got)
	}
}
