package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/users-crud/internal/logger"
)

// ErrUniqueViolation is returned when a write collides with a unique constraint.
// The driver error stays in the chain.
var ErrUniqueViolation = errors.New("unique constraint violation")

// SQLSTATE unique_violation
const uniqueViolationCode = "23505"

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the request transaction when there is one and falls back to the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// mapError translates driver errors the services care about into package sentinels.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	}
	return err
}

// logQuery logs the query on a single line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
