package usecase

import (
	"context"

	"mydrip/internal/domain/entity"
)

// LocaleUsecase defines the interface for language selection and
// translation lookups.
type LocaleUsecase interface {
	Languages(ctx context.Context) ([]entity.Language, error)

	// Detect resolves the effective language: saved preference first, then
	// the Accept-Language header (language match, then region match), then
	// the default language.
	Detect(ctx context.Context, acceptLanguage string) (string, error)

	SetLanguage(ctx context.Context, lang string) error
	Translations(ctx context.Context, lang string) (map[string]string, error)
}
