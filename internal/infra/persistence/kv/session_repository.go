package kv

import (
	"context"

	"mydrip/internal/domain/entity"
	"mydrip/internal/domain/repository"
	"mydrip/internal/errors"
)

type sessionRepository struct {
	store repository.KV
}

// NewSessionRepository creates a session repository over the storage port.
func NewSessionRepository(store repository.KVStore) repository.SessionRepository {
	return &sessionRepository{store: store}
}

// newSessionRepositoryWithKV binds the repository to a transactional view.
func newSessionRepositoryWithKV(store repository.KV) repository.SessionRepository {
	return &sessionRepository{store: store}
}

// FindUser returns the current session's user, or repository.ErrUserNotFound.
func (r *sessionRepository) FindUser(ctx context.Context) (*entity.User, error) {
	user, err := getJSON[entity.User](ctx, r.store, keyUser)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

// SaveUser stores the user record, replacing any existing one.
func (r *sessionRepository) SaveUser(ctx context.Context, user *entity.User) error {
	return setJSON(ctx, r.store, keyUser, user)
}

// DeleteUser removes the user record only. Credentials are untouched.
func (r *sessionRepository) DeleteUser(ctx context.Context) error {
	return errors.Wrap(r.store.Delete(ctx, keyUser), "failed to delete user record")
}

// FindCredential returns the stored password hash for an email.
func (r *sessionRepository) FindCredential(ctx context.Context, email string) (string, error) {
	raw, err := r.store.Get(ctx, credentialKey(email))
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return "", repository.ErrCredentialNotFound
		}

		return "", errors.Wrap(err, "failed to read credential")
	}

	return string(raw), nil
}

// SaveCredential stores the password hash for an email.
func (r *sessionRepository) SaveCredential(ctx context.Context, email, passwordHash string) error {
	return errors.Wrap(
		r.store.Set(ctx, credentialKey(email), []byte(passwordHash)),
		"failed to write credential",
	)
}
