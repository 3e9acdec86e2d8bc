// Package repository holds the SQL access to the users and feedbacks
// tables. Lookups that match no row return apperr.ErrNotFound; a duplicate
// email returns apperr.ErrConflict.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/vaughan-dsouza/feedback/internal/apperr"
	"github.com/vaughan-dsouza/feedback/internal/models"
)

const uniqueViolation = "23505"

type UserRepository struct {
	db sqlx.ExtContext
}

// NewUserRepository accepts a *sqlx.DB or a *sqlx.Tx.
func NewUserRepository(db sqlx.ExtContext) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	query := `
		INSERT INTO users (email, password)
		VALUES ($1, $2)
		RETURNING id, email, password, created_at, updated_at
	`

	var u models.User
	if err := r.db.QueryRowxContext(ctx, query, email, passwordHash).StructScan(&u); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("create user: %w", apperr.ErrConflict)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	return r.get(ctx, query, email)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, email, password, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.get(ctx, query, id)
}

func (r *UserRepository) get(ctx context.Context, query string, arg any) (*models.User, error) {
	var u models.User
	if err := sqlx.GetContext(ctx, r.db, &u, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
