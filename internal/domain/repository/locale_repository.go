package repository

import (
	"context"

	"mydrip/internal/errors"
)

// ErrLanguageNotFound is returned when no language preference is saved.
var ErrLanguageNotFound = errors.New("language preference not found")

// LocaleRepository persists the saved language preference.
type LocaleRepository interface {
	// FindLanguage returns the saved language code, or ErrLanguageNotFound.
	FindLanguage(ctx context.Context) (string, error)

	// SaveLanguage stores the language code.
	SaveLanguage(ctx context.Context, lang string) error
}
