package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/vaughan-dsouza/feedback/internal/apperr"
	"github.com/vaughan-dsouza/feedback/internal/models"
)

const (
	msgInvalidLogin = "Invalid username or password"

	// bcrypt ignores input past 72 bytes
	maxPasswordBytes = 72
)

type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type TokenIssuer interface {
	Issue(userID int64) (string, time.Time, error)
}

// AccessToken is the result of a successful login.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// UserDirectory registers and authenticates users.
type UserDirectory struct {
	users  UserStore
	hasher PasswordHasher
	tokens TokenIssuer

	// compared against on unknown emails so both login failures cost a hash
	dummyHash string
}

func NewUserDirectory(users UserStore, hasher PasswordHasher, tokens TokenIssuer) (*UserDirectory, error) {
	dummy, err := hasher.Hash("not-a-real-password")
	if err != nil {
		return nil, fmt.Errorf("hash dummy password: %w", err)
	}
	return &UserDirectory{users: users, hasher: hasher, tokens: tokens, dummyHash: dummy}, nil
}

// NormalizeEmail trims and lower-cases an address. Uniqueness and lookups
// both use the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user. The existence check gives a friendly Conflict;
// the unique index on users.email settles concurrent registrations.
func (d *UserDirectory) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, apperr.Validation("password is required")
	}
	if len(password) > maxPasswordBytes {
		return nil, apperr.Validation(fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}

	conflict := apperr.Conflict(fmt.Sprintf("The user with this email: %s already exists", email))

	_, err := d.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, conflict
	case !errors.Is(err, apperr.ErrNotFound):
		return nil, err
	}

	hash, err := d.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := d.users.Create(ctx, email, hash)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, conflict
		}
		return nil, err
	}
	return user, nil
}

// Authenticate checks credentials and issues an access token. Unknown
// email and wrong password produce the same error.
func (d *UserDirectory) Authenticate(ctx context.Context, email, password string) (*AccessToken, error) {
	user, err := d.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			d.hasher.Verify(password, d.dummyHash)
			return nil, apperr.Unauthorized(msgInvalidLogin)
		}
		return nil, err
	}

	if user.PasswordHash == nil || !d.hasher.Verify(password, *user.PasswordHash) {
		return nil, apperr.Unauthorized(msgInvalidLogin)
	}

	token, exp, err := d.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AccessToken{Token: token, ExpiresAt: exp}, nil
}

// Logout does nothing: tokens are not tracked server-side and stay valid
// until they expire. Clients log out by discarding the token.
func (d *UserDirectory) Logout(context.Context) error {
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return apperr.Validation("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return apperr.Validation("value is not a valid email address")
	}
	return nil
}
