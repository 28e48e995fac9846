package kv

import (
	"context"

	"mydrip/internal/domain/repository"
	"mydrip/internal/errors"
)

type localeRepository struct {
	store repository.KV
}

// NewLocaleRepository creates a locale repository over the storage port.
func NewLocaleRepository(store repository.KVStore) repository.LocaleRepository {
	return &localeRepository{store: store}
}

// FindLanguage returns the saved language code, or
// repository.ErrLanguageNotFound.
func (r *localeRepository) FindLanguage(ctx context.Context) (string, error) {
	raw, err := r.store.Get(ctx, keyLanguage)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return "", repository.ErrLanguageNotFound
		}

		return "", errors.Wrap(err, "failed to read language preference")
	}

	return string(raw), nil
}

// SaveLanguage stores the language code.
func (r *localeRepository) SaveLanguage(ctx context.Context, lang string) error {
	return errors.Wrap(
		r.store.Set(ctx, keyLanguage, []byte(lang)),
		"failed to write language preference",
	)
}
