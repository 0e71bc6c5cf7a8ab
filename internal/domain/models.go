package domain

// RuleType scopes an availability rule to a kind of geographic predicate.
type RuleType string

const (
	RuleTypePostalCode  RuleType = "postal-code"
	RuleTypeStreetRange RuleType = "street-range"
)

// RuleEffect decides whether a matching rule adds or removes products.
type RuleEffect string

const (
	EffectAllow RuleEffect = "allow"
	EffectDeny  RuleEffect = "deny"
)

// Known availability status values. Anything else renders as neither
// available nor planned.
const (
	StatusAvailable   = "available"
	StatusPlanned     = "planned"
	StatusUnavailable = "unavailable"
	StatusUnknown     = "unknown"
)

// Address is a query-time address as the caller typed it. It has no identity;
// two addresses are the same iff their normalized fields are equal.
type Address struct {
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"` // may carry a letter suffix, e.g. "12a"
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
}

type Product struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Active    bool   `db:"active" json:"active"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt,omitempty"`
}

// AvailabilityRule is one declarative coverage rule. PostalCode, City and
// Street are optional free text; an empty field is a wildcard, not a
// requirement of emptiness. HouseNumberFrom/To bound a street range and may
// be given in either order; nil means unbounded on that side.
type AvailabilityRule struct {
	ID              string     `db:"id" json:"id"`
	Type            RuleType   `db:"type" json:"type"`
	Effect          RuleEffect `db:"effect" json:"effect"`
	Active          bool       `db:"active" json:"active"`
	Priority        int        `db:"priority" json:"priority"`
	PostalCode      string     `db:"postal_code" json:"postalCode,omitempty"`
	City            string     `db:"city" json:"city,omitempty"`
	Street          string     `db:"street" json:"street,omitempty"`
	HouseNumberFrom *int       `db:"house_number_from" json:"houseNumberFrom,omitempty"`
	HouseNumberTo   *int       `db:"house_number_to" json:"houseNumberTo,omitempty"`
	ProductIDs      []string   `db:"-" json:"productIds"`
	ProductsJSON    string     `db:"products_json" json:"-"`
	CreatedAt       string     `db:"created_at" json:"createdAt"`
}

// AddressRecord is a stored, structurally parsed address. It is the join key
// for direct availability mappings and is matched against a query Address by
// normalized-field equality only.
type AddressRecord struct {
	ID          string `db:"id" json:"id"`
	Street      string `db:"street" json:"street"`
	HouseNumber int    `db:"house_number" json:"houseNumber"`
	Suffix      string `db:"suffix" json:"suffix,omitempty"`
	PostalCode  string `db:"postal_code" json:"postalCode"`
	City        string `db:"city" json:"city"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
}

// AvailabilityMapping is an authoritative, operationally recorded
// address→product→status fact. It overrides rule inference for its product.
type AvailabilityMapping struct {
	ID        string `db:"id" json:"id"`
	AddressID string `db:"address_id" json:"addressId"`
	ProductID string `db:"product_id" json:"productId"`
	StatusID  string `db:"status_id" json:"statusId"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}

type AvailabilityStatus struct {
	ID    string `db:"id" json:"id"`
	Value string `db:"value" json:"value"`
}
