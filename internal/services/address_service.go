package services

import (
	"leadgrid/internal/domain"
	"leadgrid/internal/repos"

	"github.com/google/uuid"
)

// AddressBookService manages stored address records and their direct
// availability mappings.
type AddressBookService struct {
	Addresses *repos.AddressRepo
	Mappings  *repos.MappingRepo
}

func NewAddressBookService(addresses *repos.AddressRepo, mappings *repos.MappingRepo) *AddressBookService {
	return &AddressBookService{Addresses: addresses, Mappings: mappings}
}

func (s *AddressBookService) ListRecords() ([]domain.AddressRecord, error) {
	return s.Addresses.List()
}

func (s *AddressBookService) CreateRecord(rec domain.AddressRecord) (domain.AddressRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	return rec, s.Addresses.Create(rec)
}

func (s *AddressBookService) MappingsFor(addressID string) ([]domain.AvailabilityMapping, error) {
	return s.Mappings.ListForAddress(addressID)
}

func (s *AddressBookService) RecordMapping(m domain.AvailabilityMapping) (domain.AvailabilityMapping, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return m, s.Mappings.Upsert(m)
}

func (s *AddressBookService) Statuses() ([]domain.AvailabilityStatus, error) {
	return s.Mappings.Statuses()
}
