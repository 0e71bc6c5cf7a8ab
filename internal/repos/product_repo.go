package repos

import (
	"leadgrid/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// List returns the full catalog, inactive products included; the engine
// decides what to exclude.
func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
  SELECT id, name, active, created_at, COALESCE(updated_at,'') AS updated_at
  FROM products
  ORDER BY name
`)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
  SELECT id, name, active, created_at, COALESCE(updated_at,'') AS updated_at
  FROM products
  WHERE id = ?
`, id)
	return p, err
}

func (r *ProductRepo) Create(p domain.Product) error {
	_, err := r.db.Exec(`
  INSERT INTO products(id, name, active) VALUES (?, ?, ?)
`, p.ID, p.Name, p.Active)
	return err
}

func (r *ProductRepo) SetActive(id string, active bool) error {
	_, err := r.db.Exec(`
  UPDATE products SET active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
`, active, id)
	return err
}
