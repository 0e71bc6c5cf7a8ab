package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline reference data if DB is empty (statuses/products/rules/addresses)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure users exist (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Product catalog (tariffs)
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_name ON products(LOWER(name));

-- Declarative coverage rules
CREATE TABLE IF NOT EXISTS availability_rules(
  id TEXT PRIMARY KEY,
  type TEXT NOT NULL CHECK (type IN ('postal-code','street-range')),
  effect TEXT NOT NULL CHECK (effect IN ('allow','deny')),
  active INTEGER NOT NULL DEFAULT 1,
  priority INTEGER NOT NULL DEFAULT 0,
  postal_code TEXT NOT NULL DEFAULT '',
  city TEXT NOT NULL DEFAULT '',
  street TEXT NOT NULL DEFAULT '',
  house_number_from INTEGER,
  house_number_to INTEGER,
  products_json TEXT NOT NULL DEFAULT '[]',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_rules_postal   ON availability_rules(postal_code);
CREATE INDEX IF NOT EXISTS idx_rules_priority ON availability_rules(priority);

-- Stored addresses (join key for direct mappings)
CREATE TABLE IF NOT EXISTS address_records(
  id TEXT PRIMARY KEY,
  street TEXT NOT NULL,
  house_number INTEGER NOT NULL,
  suffix TEXT NOT NULL DEFAULT '',
  postal_code TEXT NOT NULL,
  city TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_addresses_postal ON address_records(postal_code);

-- Availability statuses
CREATE TABLE IF NOT EXISTS availability_statuses(
  id TEXT PRIMARY KEY,
  value TEXT NOT NULL UNIQUE
);

-- Direct address -> product -> status facts
CREATE TABLE IF NOT EXISTS availability_mappings(
  id TEXT PRIMARY KEY,
  address_id TEXT NOT NULL REFERENCES address_records(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL,
  status_id  TEXT NOT NULL REFERENCES availability_statuses(id),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  UNIQUE(address_id, product_id)
);
CREATE INDEX IF NOT EXISTS idx_mappings_address ON availability_mappings(address_id);

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('USER','ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo products/rules/addresses/mappings")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO availability_statuses(id,value) VALUES
	  ('st-available','available'),
	  ('st-planned','planned'),
	  ('st-unavailable','unavailable')`)

	tx.MustExec(`INSERT INTO products(id,name,active) VALUES
	  ('fiber-1000','Glasfaser 1000',1),
	  ('fiber-300','Glasfaser 300',1),
	  ('dsl-100','DSL 100',1),
	  ('oeko-strom','Ökostrom Basis',1),
	  ('legacy-isdn','ISDN Classic',0)`)

	tx.MustExec(`INSERT INTO availability_rules
	  (id,type,effect,active,priority,postal_code,city,street,house_number_from,house_number_to,products_json,created_at) VALUES
	  ('rule-kn-core','postal-code','allow',1,0,'78462','Konstanz','',NULL,NULL,'["fiber-1000","fiber-300","dsl-100"]','2024-03-01T09:00:00Z'),
	  ('rule-kn-west','postal-code','allow',1,0,'78467','Konstanz','',NULL,NULL,'["dsl-100","oeko-strom"]','2024-03-01T09:05:00Z'),
	  ('rule-seestr-deny','street-range','deny',1,0,'','Konstanz','Seestraße',1,10,'["fiber-1000"]','2024-05-12T14:30:00Z'),
	  ('rule-rheinstr-fiber','street-range','allow',1,0,'78467','Konstanz','Rheinstraße',NULL,20,'["fiber-300"]','2024-06-20T08:15:00Z')`)

	tx.MustExec(`INSERT INTO address_records(id,street,house_number,suffix,postal_code,city) VALUES
	  ('adr-seestr-8','Seestraße',8,'','78462','Konstanz'),
	  ('adr-rheinstr-12a','Rheinstraße',12,'a','78467','Konstanz')`)

	tx.MustExec(`INSERT INTO availability_mappings(id,address_id,product_id,status_id) VALUES
	  ('map-seestr-fiber','adr-seestr-8','fiber-1000','st-planned'),
	  ('map-rheinstr-fiber','adr-rheinstr-12a','fiber-300','st-available')`)

	return tx.Commit()
}

// seedUsers ensures one USER and one ADMIN exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Role, Hash string
	}
	mk := func(id, email, name, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Role: role, Hash: string(h)}
	}

	users := []u{
		mk("u-clara", "clara@leadgrid.test", "Clara", "USER", "Passw0rd!"),
		mk("u-admin", "admin@leadgrid.test", "Admin", "ADMIN", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash,role)
			VALUES(?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash, x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}
