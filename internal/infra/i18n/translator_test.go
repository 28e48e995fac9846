package i18n

import (
	"testing"

	"mydrip/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator_Translate(t *testing.T) {
	tr := NewTranslator()

	assert.Equal(t, "Guarda-roupa", tr.Translate("pt", "wardrobe"))
	assert.Equal(t, "Wardrobe", tr.Translate("en", "wardrobe"))
	assert.Equal(t, "Armario", tr.Translate("es", "wardrobe"))
	assert.Equal(t, "Garde-robe", tr.Translate("fr", "wardrobe"))
}

func TestTranslator_TranslateFallsBackToDefault(t *testing.T) {
	tr := NewTranslator()

	// Unsupported language resolves against the default table.
	assert.Equal(t, "Guarda-roupa", tr.Translate("de", "wardrobe"))
}

func TestTranslator_TranslateUnknownKeyReturnsKey(t *testing.T) {
	tr := NewTranslator()

	assert.Equal(t, "noSuchKey", tr.Translate("en", "noSuchKey"))
}

func TestTranslator_TablesCoverSameKeys(t *testing.T) {
	tr := NewTranslator()

	reference := tr.Translations(entity.DefaultLanguage)
	for _, lang := range []string{"en", "es", "fr"} {
		table := tr.Translations(lang)
		require.Len(t, table, len(reference), "table size mismatch for %s", lang)
		for key := range reference {
			assert.Contains(t, table, key, "missing key %q in %s", key, lang)
		}
	}
}

func TestTranslator_TranslationsReturnsCopy(t *testing.T) {
	tr := NewTranslator()

	table := tr.Translations("en")
	table["wardrobe"] = "mutated"

	assert.Equal(t, "Wardrobe", tr.Translate("en", "wardrobe"))
}

func TestTranslator_Languages(t *testing.T) {
	tr := NewTranslator()

	languages := tr.Languages()
	require.Len(t, languages, 4)
	assert.Equal(t, "pt", languages[0].Code)
	assert.Contains(t, languages[0].Regions, "BR")
	assert.Equal(t, "🇧🇷", languages[0].Flag)
}

func TestTranslator_Supported(t *testing.T) {
	tr := NewTranslator()

	assert.True(t, tr.Supported("pt"))
	assert.True(t, tr.Supported("fr"))
	assert.False(t, tr.Supported("de"))
	assert.False(t, tr.Supported(""))
}
