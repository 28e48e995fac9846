package repository

import (
	"context"

	"mydrip/internal/domain/entity"
	"mydrip/internal/errors"
)

// ErrUserNotFound is returned when no session record exists.
var ErrUserNotFound = errors.New("user record not found")

// ErrCredentialNotFound is returned when no credential is stored for an email.
var ErrCredentialNotFound = errors.New("credential not found")

// SessionRepository persists the single account record and its credentials.
// The presence of the user record is the session marker: logout deletes the
// record but leaves credentials in place so the account can log in again.
type SessionRepository interface {
	// FindUser returns the current session's user, or ErrUserNotFound.
	FindUser(ctx context.Context) (*entity.User, error)

	// SaveUser stores the user record, replacing any existing one.
	SaveUser(ctx context.Context, user *entity.User) error

	// DeleteUser removes the user record only. Credentials are untouched.
	DeleteUser(ctx context.Context) error

	// FindCredential returns the stored password hash for an email,
	// or ErrCredentialNotFound.
	FindCredential(ctx context.Context, email string) (string, error)

	// SaveCredential stores the password hash for an email.
	SaveCredential(ctx context.Context, email, passwordHash string) error
}
