package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/resumeforge/resumeforge-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const userColumns = `id, name, email, password_hash, provider, avatar_url, reset_code, reset_code_expiry, created_at, updated_at`

// UserRepository persists user accounts in PostgreSQL.
type UserRepository struct {
	db Querier
}

// NewUserRepository creates a UserRepository backed by db.
func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// GetByEmail returns the account for email, matched case-insensitively.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + `
			  FROM auth_users WHERE LOWER(email) = LOWER($1)`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// Create inserts a new account. The unique index on LOWER(email) rejects
// a racing duplicate insert.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO auth_users (` + userColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING ` + userColumns

	savedUser, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Provider,
		user.AvatarURL, user.ResetCode, user.ResetCodeExpiry,
		user.CreatedAt, user.UpdatedAt,
	))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}

// Update overwrites the stored account row, including reset-code fields,
// in a single statement.
func (r *UserRepository) Update(ctx context.Context, user model.User) (model.User, error) {
	query := `UPDATE auth_users
			  SET name = $2, email = $3, password_hash = $4, provider = $5,
			      avatar_url = $6, reset_code = $7, reset_code_expiry = $8, updated_at = $9
			  WHERE id = $1
			  RETURNING ` + userColumns

	savedUser, err := scanUser(r.db.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Provider,
		user.AvatarURL, user.ResetCode, user.ResetCodeExpiry, user.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return savedUser, nil
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Provider,
		&user.AvatarURL, &user.ResetCode, &user.ResetCodeExpiry,
		&user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}
