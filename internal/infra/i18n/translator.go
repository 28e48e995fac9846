// Package i18n provides the static message tables behind the Translator
// port.
package i18n

import (
	"maps"

	"mydrip/internal/domain/entity"
	"mydrip/internal/domain/service"
)

type translator struct {
	tables map[string]map[string]string
}

// NewTranslator creates a translator backed by the compiled-in tables.
// This function will be used as an Fx provider.
func NewTranslator() service.Translator {
	return &translator{
		tables: map[string]map[string]string{
			"pt": messagesPT,
			"en": messagesEN,
			"es": messagesES,
			"fr": messagesFR,
		},
	}
}

// Translate resolves key in lang, falling back to the default language
// and finally to the key itself so missing entries surface in the UI.
func (t *translator) Translate(lang, key string) string {
	if table, ok := t.tables[lang]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := t.tables[entity.DefaultLanguage][key]; ok {
		return msg
	}

	return key
}

// Translations returns a copy of the message table for lang, or the
// default language's table when lang is unsupported.
func (t *translator) Translations(lang string) map[string]string {
	table, ok := t.tables[lang]
	if !ok {
		table = t.tables[entity.DefaultLanguage]
	}

	return maps.Clone(table)
}

// Languages lists the supported languages in presentation order.
func (t *translator) Languages() []entity.Language {
	return supportedLanguages()
}

// Supported reports whether lang belongs to the closed language set.
func (t *translator) Supported(lang string) bool {
	_, ok := t.tables[lang]

	return ok
}

func supportedLanguages() []entity.Language {
	return []entity.Language{
		{
			Code:    "pt",
			Name:    "Português",
			Flag:    "🇧🇷",
			Regions: []string{"BR", "PT", "AO", "MZ", "CV", "GW", "ST", "TL"},
		},
		{
			Code:    "en",
			Name:    "English",
			Flag:    "🇺🇸",
			Regions: []string{"US", "GB", "CA", "AU", "NZ", "IE", "ZA", "IN"},
		},
		{
			Code:    "es",
			Name:    "Español",
			Flag:    "🇪🇸",
			Regions: []string{"ES", "MX", "AR", "CO", "PE", "VE", "CL", "EC", "GT", "CU", "BO", "DO", "HN", "PY", "SV", "NI", "CR", "PA", "UY", "GQ"},
		},
		{
			Code:    "fr",
			Name:    "Français",
			Flag:    "🇫🇷",
			Regions: []string{"FR", "BE", "CH", "LU", "MC", "SN", "CI", "ML", "BF", "NE", "TD", "MG", "CM", "CD", "CG", "GA", "CF", "DJ", "KM", "VU", "NC", "PF"},
		},
	}
}
