package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/users-crud/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user with the given id, or nil if there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT id, name, email, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

// GetByEmail returns the user holding email, or nil if there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `
		SELECT id, name, email, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`
	return r.getOne(ctx, query, email)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)

	logQuery(query, []any{arg}, user, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns at most limit users ordered by id, skipping the first offset rows.
func (r *UserReadRepository) List(ctx context.Context, offset, limit int) ([]models.User, error) {
	const query = `
		SELECT id, name, email, created_at, updated_at
		FROM users
		ORDER BY id ASC
		LIMIT $1 OFFSET $2
	`

	users := make([]models.User, 0)
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, limit, offset)

	logQuery(query, []any{limit, offset}, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts user and returns the stored row with its assigned id.
func (r *UserWriteRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	const query = `
		INSERT INTO users (name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, created_at, updated_at
	`
	args := []any{user.Name, user.Email, user.CreatedAt, user.UpdatedAt}

	var created models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)

	logQuery(query, args, created, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &created, nil
}

// Update overwrites name, email and updated_at of the row with user.ID.
// It returns nil if the row no longer exists.
func (r *UserWriteRepository) Update(ctx context.Context, user models.User) (*models.User, error) {
	const query = `
		UPDATE users
		SET name = $1, email = $2, updated_at = $3
		WHERE id = $4
		RETURNING id, name, email, created_at, updated_at
	`
	args := []any{user.Name, user.Email, user.UpdatedAt, user.ID}

	var updated models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &updated, query, args...)

	logQuery(query, args, updated, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &updated, nil
}

// Delete removes the row with the given id and reports whether it existed.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM users WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
