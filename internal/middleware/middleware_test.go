package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaughan-dsouza/feedback/internal/apperr"
	"github.com/vaughan-dsouza/feedback/internal/models"
	"github.com/vaughan-dsouza/feedback/internal/utils"
)

type stubResolver struct {
	gotToken string
	user     *models.User
	err      error
}

func (s *stubResolver) Resolve(_ context.Context, token string) (*models.User, error) {
	s.gotToken = token
	return s.user, s.err
}

func protected(t *testing.T, res Resolver) (http.Handler, *bool) {
	t.Helper()
	called := false
	h := Auth(res)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		u, ok := utils.UserFromContext(r.Context())
		require.True(t, ok)
		w.Header().Set("X-User", u.Email)
		w.WriteHeader(http.StatusOK)
	}))
	return h, &called
}

func TestAuth_PassesUserThrough(t *testing.T) {
	res := &stubResolver{user: &models.User{ID: 1, Email: "alice@example.com"}}
	h, called := protected(t, res)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer   tok-123 ")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, *called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok-123", res.gotToken)
	assert.Equal(t, "alice@example.com", rec.Header().Get("X-User"))
}

func TestAuth_MissingOrMalformedHeader(t *testing.T) {
	for _, header := range []string{"", "Bearer", "Bearer ", "Basic abc", "tok"} {
		res := &stubResolver{}
		h, called := protected(t, res)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.False(t, *called, "header %q", header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		assert.Empty(t, res.gotToken)
	}
}

func TestAuth_ResolverRejects(t *testing.T) {
	res := &stubResolver{err: apperr.Unauthorized("Could not validate credentials")}
	h, called := protected(t, res)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, *called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not validate credentials")
}

func TestAuth_ResolverFailure(t *testing.T) {
	res := &stubResolver{err: errors.New("db down")}
	h, _ := protected(t, res)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestLogging_WritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	h := chimw.RequestID(Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Info().Msg("inside")
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest(http.MethodGet, "/feedback/", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"message":"inside"`)
	assert.Contains(t, out, `"message":"request"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"path":"/feedback/"`)
	assert.Contains(t, out, `"request_id":"`)
}
