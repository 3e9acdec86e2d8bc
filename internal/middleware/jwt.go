package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vaughan-dsouza/feedback/internal/models"
	"github.com/vaughan-dsouza/feedback/internal/utils"
)

// Resolver maps a bearer token to its user.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*models.User, error)
}

// Auth rejects requests without a valid bearer token and puts the resolved
// user on the request context.
func Auth(resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				utils.JSONError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			user, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				utils.Error(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", false
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
