package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vaughan-dsouza/feedback/internal/apperr"
	"github.com/vaughan-dsouza/feedback/internal/models"
)

// FeedbackRepository scopes every statement by owner: rows are addressed
// by id AND user_id together, so another user's row looks absent.
type FeedbackRepository struct {
	db sqlx.ExtContext
}

func NewFeedbackRepository(db sqlx.ExtContext) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, userID int64, content string) (*models.Feedback, error) {
	query := `
		INSERT INTO feedbacks (user_id, content)
		VALUES ($1, $2)
		RETURNING id, user_id, content, created_at, updated_at
	`

	var f models.Feedback
	if err := r.db.QueryRowxContext(ctx, query, userID, content).StructScan(&f); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &f, nil
}

// ListByOwner returns the owner's feedback newest first.
func (r *FeedbackRepository) ListByOwner(ctx context.Context, userID int64, skip, limit int) ([]models.Feedback, error) {
	query := `
		SELECT id, user_id, content, created_at, updated_at
		FROM feedbacks
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		OFFSET $2
		LIMIT $3
	`

	feedbacks := []models.Feedback{}
	if err := sqlx.SelectContext(ctx, r.db, &feedbacks, query, userID, skip, limit); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return feedbacks, nil
}

func (r *FeedbackRepository) GetByOwner(ctx context.Context, id, userID int64) (*models.Feedback, error) {
	query := `
		SELECT id, user_id, content, created_at, updated_at
		FROM feedbacks
		WHERE id = $1 AND user_id = $2
	`

	var f models.Feedback
	if err := sqlx.GetContext(ctx, r.db, &f, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &f, nil
}

// UpdateByOwner sets content when non-nil and always refreshes updated_at.
func (r *FeedbackRepository) UpdateByOwner(ctx context.Context, id, userID int64, content *string) (*models.Feedback, error) {
	query := `
		UPDATE feedbacks
		SET content = COALESCE($1, content), updated_at = now()
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, content, created_at, updated_at
	`

	var f models.Feedback
	if err := r.db.QueryRowxContext(ctx, query, content, id, userID).StructScan(&f); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &f, nil
}

func (r *FeedbackRepository) DeleteByOwner(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM feedbacks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
