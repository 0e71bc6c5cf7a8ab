package availability

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"leadgrid/internal/domain"
)

// DefaultPriority is the priority assumed for rules authored without one.
const DefaultPriority = 0

const (
	SourceDirect = "direct"
	SourceRule   = "rule"
)

// Snapshot carries the read-only reference data one resolution works on. The
// engine never mutates any of its slices.
type Snapshot struct {
	Products       []domain.Product
	Rules          []domain.AvailabilityRule
	AddressRecords []domain.AddressRecord
	Mappings       []domain.AvailabilityMapping
	Statuses       []domain.AvailabilityStatus
}

// ResolvedProduct is a catalog lookup result. Missing marks an id that was
// referenced by a rule or mapping but has no catalog entry; such ids are
// surfaced instead of silently dropped.
type ResolvedProduct struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Active  bool   `json:"active"`
	Missing bool   `json:"missing,omitempty"`
}

// RuleResult is the rule-inference half of an availability answer.
// AppliedRules lists only the matched rules that actually changed the product
// set; a deny for a product that was never allowed stays in MatchedRules but
// not here.
type RuleResult struct {
	IsServiceable bool                      `json:"isServiceable"`
	ProductIDs    []string                  `json:"availableProductIds"`
	Products      []ResolvedProduct         `json:"availableProducts"`
	MatchedRules  []domain.AvailabilityRule `json:"matchedRules"`
	AppliedRules  []domain.AvailabilityRule `json:"appliedRules"`
}

// DirectEntry is one availability mapping joined to its product and status.
type DirectEntry struct {
	MappingID string                    `json:"mappingId"`
	Product   ResolvedProduct           `json:"product"`
	Status    domain.AvailabilityStatus `json:"status"`
}

// DirectResult is the directly-recorded half of an availability answer.
type DirectResult struct {
	Record  *domain.AddressRecord `json:"record,omitempty"`
	Entries []DirectEntry         `json:"entries"`
}

// CombinedProduct is one line of the merged answer with its provenance.
type CombinedProduct struct {
	Product     ResolvedProduct `json:"product"`
	Source      string          `json:"source"` // "direct" or "rule"
	StatusValue string          `json:"statusValue,omitempty"`
	IsAvailable bool            `json:"isAvailable"`
	IsPlanned   bool            `json:"isPlanned"`
}

// CombinedResult merges rule inference with direct mappings and keeps both
// raw sub-results so a caller can explain why an address resolved as it did.
type CombinedResult struct {
	IsServiceable    bool              `json:"isServiceable"`
	Products         []CombinedProduct `json:"combinedProducts"`
	RuleBased        RuleResult        `json:"ruleBasedResult"`
	Direct           DirectResult      `json:"directResult"`
	HasDirectMapping bool              `json:"hasDirectMapping"`
}

// newCollator returns a fresh German collator per sort; collate.Collator is
// not safe for concurrent use and resolutions may run in parallel.
func newCollator() *collate.Collator {
	return collate.New(language.German)
}
