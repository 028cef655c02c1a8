package queries

const (
	GetUserByID = `
		SELECT id, email, name, role, created_date, modified_date, created_by_upn, modified_by_upn
		FROM users
		WHERE id = $1
	`
)
