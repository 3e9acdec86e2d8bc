package handlers

import (
	"context"
	"time"

	"github.com/vaughan-dsouza/feedback/internal/models"
	"github.com/vaughan-dsouza/feedback/internal/services"
)

type UserService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*services.AccessToken, error)
	Logout(ctx context.Context) error
}

type FeedbackService interface {
	Create(ctx context.Context, owner *models.User, content string) (*models.Feedback, error)
	List(ctx context.Context, owner *models.User, skip, limit int) ([]models.Feedback, error)
	Get(ctx context.Context, owner *models.User, id int64) (*models.Feedback, error)
	Update(ctx context.Context, owner *models.User, id int64, upd services.FeedbackUpdate) (*models.Feedback, error)
	Delete(ctx context.Context, owner *models.User, id int64) error
}

// Pinger reports database reachability; *sqlx.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	Auth     *AuthHandler
	Feedback *FeedbackHandler
	Health   *HealthHandler
}

func NewHandler(users UserService, feedback FeedbackService, db Pinger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(users),
		Feedback: NewFeedbackHandler(feedback),
		Health:   &HealthHandler{DB: db, Timeout: 2 * time.Second},
	}
}
