package impl

import (
	"context"
	"testing"

	domainerrors "mydrip/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocaleService_Languages(t *testing.T) {
	env := newTestEnv(t)

	languages, err := env.locale.Languages(context.Background())
	require.NoError(t, err)
	require.Len(t, languages, 4)

	codes := make([]string, 0, len(languages))
	for _, lang := range languages {
		codes = append(codes, lang.Code)
	}
	assert.Equal(t, []string{"pt", "en", "es", "fr"}, codes)
}

func TestLocaleService_DetectFromHeader(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cases := []struct {
		header string
		want   string
	}{
		{"pt-BR,pt;q=0.9", "pt"},
		{"en-US,en;q=0.8", "en"},
		{"es-MX", "es"},
		{"fr-FR,fr;q=0.9,en;q=0.5", "fr"},
		// Unsupported language with a supported region falls through to
		// the region mapping.
		{"de-CH", "fr"},
		// Nothing usable falls back to the default.
		{"ja-JP", "pt"},
		{"", "pt"},
		{"not a header", "pt"},
	}

	for _, c := range cases {
		lang, err := env.locale.Detect(ctx, c.header)
		require.NoError(t, err, "header %q", c.header)
		assert.Equal(t, c.want, lang, "header %q", c.header)
	}
}

func TestLocaleService_SavedPreferenceWins(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.locale.SetLanguage(ctx, "es"))

	lang, err := env.locale.Detect(ctx, "en-US")
	require.NoError(t, err)
	assert.Equal(t, "es", lang)
}

func TestLocaleService_SetLanguageRejectsUnknown(t *testing.T) {
	env := newTestEnv(t)

	err := env.locale.SetLanguage(context.Background(), "de")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedLanguage)
}

func TestLocaleService_Translations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	table, err := env.locale.Translations(ctx, "fr")
	require.NoError(t, err)
	assert.Equal(t, "Garde-robe", table["wardrobe"])

	_, err = env.locale.Translations(ctx, "zz")
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedLanguage)
}
