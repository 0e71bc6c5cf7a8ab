package services

import (
	"errors"

	"leadgrid/internal/availability"
	"leadgrid/internal/domain"
	"leadgrid/internal/repos"
)

// AvailabilityService loads read-only reference snapshots and hands them to
// the pure resolution engine. The engine itself never touches storage.
type AvailabilityService struct {
	Products  *repos.ProductRepo
	Rules     *repos.RuleRepo
	Addresses *repos.AddressRepo
	Mappings  *repos.MappingRepo
}

func NewAvailabilityService(p *repos.ProductRepo, r *repos.RuleRepo, a *repos.AddressRepo, m *repos.MappingRepo) *AvailabilityService {
	return &AvailabilityService{Products: p, Rules: r, Addresses: a, Mappings: m}
}

// Check resolves the combined availability for a query address. A sparse or
// even empty address is a legitimate query that resolves to "not
// serviceable"; only missing collaborators are an error.
func (s *AvailabilityService) Check(addr domain.Address) (availability.CombinedResult, error) {
	if s.Products == nil || s.Rules == nil {
		return availability.CombinedResult{}, errors.New("availability: catalog and rules repos are required")
	}

	snap := availability.Snapshot{}
	var err error
	if snap.Products, err = s.Products.List(); err != nil {
		return availability.CombinedResult{}, err
	}
	if snap.Rules, err = s.Rules.List(); err != nil {
		return availability.CombinedResult{}, err
	}
	// The direct-mapping path is optional: without an address book the
	// result simply carries hasDirectMapping=false.
	if s.Addresses != nil {
		if snap.AddressRecords, err = s.Addresses.List(); err != nil {
			return availability.CombinedResult{}, err
		}
	}
	if s.Mappings != nil {
		if snap.Mappings, err = s.Mappings.List(); err != nil {
			return availability.CombinedResult{}, err
		}
		if snap.Statuses, err = s.Mappings.Statuses(); err != nil {
			return availability.CombinedResult{}, err
		}
	}

	return availability.Combine(addr, snap), nil
}
