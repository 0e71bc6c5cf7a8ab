package domain

// User is a dashboard login; ADMIN role gates the rule/catalog admin pages.
type User struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	Hash  string `db:"password_hash"`
	Role  string `db:"role"`
}
