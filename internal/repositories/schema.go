package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// usersSchema creates the users table. The UNIQUE constraint also indexes email.
const usersSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(100) NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// EnsureSchema creates the users table if it does not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, usersSchema)
	logQuery(usersSchema, nil, nil, err)
	return err
}
