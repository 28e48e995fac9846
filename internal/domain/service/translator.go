package service

import "mydrip/internal/domain/entity"

// Translator exposes the i18n contract for user-facing strings.
// Implementations hold a static message table per language; there is no
// templating, lookup falls back to the default language.
type Translator interface {
	// Translate renders the message identified by key for the given language.
	Translate(lang, key string) string

	// Translations returns the full message table for a language.
	Translations(lang string) map[string]string

	// Languages lists the supported languages.
	Languages() []entity.Language

	// Supported reports whether the language code is part of the closed set.
	Supported(lang string) bool
}
