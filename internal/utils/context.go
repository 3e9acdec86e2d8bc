package utils

import (
	"context"

	"github.com/vaughan-dsouza/feedback/internal/models"
)

// context key
type ctxKey string

const ctxUserKey ctxKey = "current_user"

// WithUser stores the authenticated user on ctx.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, ctxUserKey, u)
}

// UserFromContext returns the user stored by WithUser.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(ctxUserKey).(*models.User)
	return u, ok && u != nil
}
