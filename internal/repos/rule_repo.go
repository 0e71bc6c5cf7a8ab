package repos

import (
	"encoding/json"

	"leadgrid/internal/domain"

	"github.com/jmoiron/sqlx"
)

type RuleRepo struct{ db *sqlx.DB }

func NewRuleRepo(db *sqlx.DB) *RuleRepo { return &RuleRepo{db: db} }

const ruleColumns = `
  id, type, effect, active, priority, postal_code, city, street,
  house_number_from, house_number_to, products_json, created_at`

// List returns all rules, inactive ones included; the matcher skips those.
func (r *RuleRepo) List() ([]domain.AvailabilityRule, error) {
	var out []domain.AvailabilityRule
	err := r.db.Select(&out, `
  SELECT `+ruleColumns+`
  FROM availability_rules
  ORDER BY priority, created_at, id
`)
	if err != nil {
		return nil, err
	}
	for i := range out {
		decodeRuleProducts(&out[i])
	}
	return out, nil
}

func (r *RuleRepo) Get(id string) (domain.AvailabilityRule, error) {
	var rule domain.AvailabilityRule
	err := r.db.Get(&rule, `
  SELECT `+ruleColumns+`
  FROM availability_rules
  WHERE id = ?
`, id)
	if err != nil {
		return rule, err
	}
	decodeRuleProducts(&rule)
	return rule, nil
}

func (r *RuleRepo) Create(rule domain.AvailabilityRule) error {
	products, err := json.Marshal(rule.ProductIDs)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`
  INSERT INTO availability_rules
    (id, type, effect, active, priority, postal_code, city, street,
     house_number_from, house_number_to, products_json)
  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, rule.ID, rule.Type, rule.Effect, rule.Active, rule.Priority,
		rule.PostalCode, rule.City, rule.Street,
		rule.HouseNumberFrom, rule.HouseNumberTo, string(products))
	return err
}

func (r *RuleRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM availability_rules WHERE id = ?`, id)
	return err
}

// decodeRuleProducts unpacks the products_json column. Junk in the column
// degrades to an empty product list rather than an error; a rule affecting
// nothing simply never changes the result set.
func decodeRuleProducts(rule *domain.AvailabilityRule) {
	rule.ProductIDs = nil
	if rule.ProductsJSON == "" {
		return
	}
	_ = json.Unmarshal([]byte(rule.ProductsJSON), &rule.ProductIDs)
}
