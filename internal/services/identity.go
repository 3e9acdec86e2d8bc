// Package services holds the authentication and feedback logic that sits
// between the HTTP handlers and the repositories.
package services

import (
	"context"
	"errors"

	"github.com/vaughan-dsouza/feedback/internal/apperr"
	"github.com/vaughan-dsouza/feedback/internal/models"
)

const msgBadCredentials = "Could not validate credentials"

type TokenVerifier interface {
	Verify(token string) (int64, error)
}

type UserFinder interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// IdentityResolver turns a bearer token into the user it was issued for.
// It runs on every protected request and caches nothing.
type IdentityResolver struct {
	tokens TokenVerifier
	users  UserFinder
}

func NewIdentityResolver(tokens TokenVerifier, users UserFinder) *IdentityResolver {
	return &IdentityResolver{tokens: tokens, users: users}
}

// Resolve fails with apperr.ErrUnauthorized for a bad token and for a
// token whose user no longer exists; the two cases are indistinguishable.
func (r *IdentityResolver) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, apperr.Unauthorized(msgBadCredentials)
	}

	userID, err := r.tokens.Verify(token)
	if err != nil {
		return nil, apperr.Unauthorized(msgBadCredentials)
	}

	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Unauthorized(msgBadCredentials)
		}
		return nil, err
	}
	return user, nil
}
