package repos

import (
	"leadgrid/internal/domain"

	"github.com/jmoiron/sqlx"
)

type AddressRepo struct{ db *sqlx.DB }

func NewAddressRepo(db *sqlx.DB) *AddressRepo { return &AddressRepo{db: db} }

func (r *AddressRepo) List() ([]domain.AddressRecord, error) {
	var out []domain.AddressRecord
	err := r.db.Select(&out, `
  SELECT id, street, house_number, suffix, postal_code, city, created_at
  FROM address_records
  ORDER BY city, street, house_number, suffix
`)
	return out, err
}

func (r *AddressRepo) Get(id string) (domain.AddressRecord, error) {
	var rec domain.AddressRecord
	err := r.db.Get(&rec, `
  SELECT id, street, house_number, suffix, postal_code, city, created_at
  FROM address_records
  WHERE id = ?
`, id)
	return rec, err
}

func (r *AddressRepo) Create(rec domain.AddressRecord) error {
	_, err := r.db.Exec(`
  INSERT INTO address_records(id, street, house_number, suffix, postal_code, city)
  VALUES (?, ?, ?, ?, ?, ?)
`, rec.ID, rec.Street, rec.HouseNumber, rec.Suffix, rec.PostalCode, rec.City)
	return err
}

func (r *AddressRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM address_records WHERE id = ?`, id)
	return err
}
