package services

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vaughan-dsouza/feedback/internal/apperr"
	"github.com/vaughan-dsouza/feedback/internal/models"
)

const (
	DefaultPageSize = 10

	msgFeedbackNotFound = "Feedback not found"
)

type FeedbackRepo interface {
	Create(ctx context.Context, userID int64, content string) (*models.Feedback, error)
	ListByOwner(ctx context.Context, userID int64, skip, limit int) ([]models.Feedback, error)
	GetByOwner(ctx context.Context, id, userID int64) (*models.Feedback, error)
	UpdateByOwner(ctx context.Context, id, userID int64, content *string) (*models.Feedback, error)
	DeleteByOwner(ctx context.Context, id, userID int64) error
}

// FeedbackUpdate is a partial update; nil fields are left untouched.
type FeedbackUpdate struct {
	Content *string
}

// FeedbackStore is the owner-scoped CRUD over feedback. Every call takes
// the resolved current user and only ever touches that user's rows.
type FeedbackStore struct {
	repo        FeedbackRepo
	maxPageSize int
}

func NewFeedbackStore(repo FeedbackRepo, maxPageSize int) *FeedbackStore {
	if maxPageSize <= 0 {
		maxPageSize = DefaultPageSize
	}
	return &FeedbackStore{repo: repo, maxPageSize: maxPageSize}
}

// ValidateContent enforces the 5..500 character bound, counted in runes.
func ValidateContent(content string) error {
	n := utf8.RuneCountInString(content)
	if n < models.FeedbackContentMin || n > models.FeedbackContentMax {
		return apperr.Validation(fmt.Sprintf("content must be between %d and %d characters",
			models.FeedbackContentMin, models.FeedbackContentMax))
	}
	return nil
}

func (s *FeedbackStore) Create(ctx context.Context, owner *models.User, content string) (*models.Feedback, error) {
	if err := ValidateContent(content); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, owner.ID, content)
}

// List pages through the owner's feedback, newest first. limit above the
// configured maximum is clamped.
func (s *FeedbackStore) List(ctx context.Context, owner *models.User, skip, limit int) ([]models.Feedback, error) {
	if skip < 0 {
		return nil, apperr.Validation("skip must not be negative")
	}
	if limit < 1 {
		return nil, apperr.Validation("limit must be at least 1")
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}
	return s.repo.ListByOwner(ctx, owner.ID, skip, limit)
}

func (s *FeedbackStore) Get(ctx context.Context, owner *models.User, id int64) (*models.Feedback, error) {
	f, err := s.repo.GetByOwner(ctx, id, owner.ID)
	if err != nil {
		return nil, notFound(err)
	}
	return f, nil
}

func (s *FeedbackStore) Update(ctx context.Context, owner *models.User, id int64, upd FeedbackUpdate) (*models.Feedback, error) {
	if upd.Content != nil {
		if err := ValidateContent(*upd.Content); err != nil {
			return nil, err
		}
	}

	f, err := s.repo.UpdateByOwner(ctx, id, owner.ID, upd.Content)
	if err != nil {
		return nil, notFound(err)
	}
	return f, nil
}

func (s *FeedbackStore) Delete(ctx context.Context, owner *models.User, id int64) error {
	if err := s.repo.DeleteByOwner(ctx, id, owner.ID); err != nil {
		return notFound(err)
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NotFound(msgFeedbackNotFound)
	}
	return err
}
