package repos

import (
	"leadgrid/internal/domain"

	"github.com/jmoiron/sqlx"
)

type MappingRepo struct{ db *sqlx.DB }

func NewMappingRepo(db *sqlx.DB) *MappingRepo { return &MappingRepo{db: db} }

func (r *MappingRepo) List() ([]domain.AvailabilityMapping, error) {
	var out []domain.AvailabilityMapping
	err := r.db.Select(&out, `
  SELECT id, address_id, product_id, status_id, created_at
  FROM availability_mappings
  ORDER BY address_id, product_id
`)
	return out, err
}

func (r *MappingRepo) ListForAddress(addressID string) ([]domain.AvailabilityMapping, error) {
	var out []domain.AvailabilityMapping
	err := r.db.Select(&out, `
  SELECT id, address_id, product_id, status_id, created_at
  FROM availability_mappings
  WHERE address_id = ?
  ORDER BY product_id
`, addressID)
	return out, err
}

// Upsert records a fact for (address, product), replacing any earlier status.
// The per-pair uniqueness keeps the direct path unambiguous.
func (r *MappingRepo) Upsert(m domain.AvailabilityMapping) error {
	_, err := r.db.Exec(`
  INSERT INTO availability_mappings(id, address_id, product_id, status_id)
  VALUES (?, ?, ?, ?)
  ON CONFLICT(address_id, product_id) DO UPDATE SET status_id = excluded.status_id
`, m.ID, m.AddressID, m.ProductID, m.StatusID)
	return err
}

func (r *MappingRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM availability_mappings WHERE id = ?`, id)
	return err
}

func (r *MappingRepo) Statuses() ([]domain.AvailabilityStatus, error) {
	var out []domain.AvailabilityStatus
	err := r.db.Select(&out, `SELECT id, value FROM availability_statuses ORDER BY value`)
	return out, err
}
