package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/vaughan-dsouza/feedback/internal/apperr"
)

// JSON writes a JSON response with status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// JSONError writes {"detail": "..."} with a given status.
func JSONError(w http.ResponseWriter, status int, msg string) {
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	JSON(w, status, map[string]string{"detail": msg})
}

// Error maps err to a status code and writes it. Errors outside the apperr
// taxonomy are logged and answered with a bare 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		JSONError(w, status, "internal server error")
		return
	}
	JSONError(w, status, apperr.Message(err, http.StatusText(status)))
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON parses the JSON body into v and handles invalid JSON. Unknown
// fields are ignored.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		JSONError(w, http.StatusBadRequest, "empty request body")
		return http.ErrBodyNotAllowed
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Msg("decode body")
		JSONError(w, http.StatusBadRequest, "invalid JSON body")
		return err
	}

	return nil
}

// FormValue returns a required form field, writing a 422 when it is absent.
func FormValue(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	if err := r.ParseForm(); err != nil {
		JSONError(w, http.StatusBadRequest, "invalid form body")
		return "", false
	}
	if _, ok := r.PostForm[key]; !ok {
		JSONError(w, http.StatusUnprocessableEntity, "field required: "+key)
		return "", false
	}
	return r.PostForm.Get(key), true
}
