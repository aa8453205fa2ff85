package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// HealthRepository checks database connectivity.
type HealthRepository struct {
	db *sqlx.DB
}

func NewHealthRepository(db *sqlx.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

// Ping borrows a dedicated connection from the pool and runs a trivial query on it.
// The connection is returned to the pool on every path.
func (r *HealthRepository) Ping(ctx context.Context) error {
	const query = `SELECT 1`

	conn, err := r.db.Connx(ctx)
	if err != nil {
		logQuery(query, nil, nil, err)
		return err
	}
	defer conn.Close()

	_, err = conn.ExecContext(ctx, query)
	logQuery(query, nil, nil, err)
	return err
}
