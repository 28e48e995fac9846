package impl

import (
	"context"
	"log/slog"
	"slices"

	deliverycontext "mydrip/internal/delivery/context"
	"mydrip/internal/domain/entity"
	domainerrors "mydrip/internal/domain/errors"
	"mydrip/internal/domain/repository"
	"mydrip/internal/domain/service"
	"mydrip/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/text/language"
)

// localeService implements the LocaleUsecase interface.
type localeService struct {
	localeRepo repository.LocaleRepository
	translator service.Translator
	logger     *slog.Logger
}

// LocaleServiceParams holds dependencies for localeService, injected by Fx.
type LocaleServiceParams struct {
	fx.In

	LocaleRepo repository.LocaleRepository
	Translator service.Translator
	Logger     *slog.Logger
}

// NewLocaleService is the constructor for localeService.
func NewLocaleService(params LocaleServiceParams) usecase.LocaleUsecase {
	return &localeService{
		localeRepo: params.LocaleRepo,
		translator: params.Translator,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *localeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Languages lists the supported languages.
func (srv *localeService) Languages(_ context.Context) ([]entity.Language, error) {
	return srv.translator.Languages(), nil
}

// Detect resolves the effective language. A saved preference wins; otherwise
// the Accept-Language header is walked in order, matching first on language
// and then on region, before falling back to the default.
func (srv *localeService) Detect(ctx context.Context, acceptLanguage string) (string, error) {
	saved, err := srv.localeRepo.FindLanguage(ctx)
	if err == nil && srv.translator.Supported(saved) {
		return saved, nil
	}
	if err != nil && !errors.Is(err, repository.ErrLanguageNotFound) {
		return "", errors.Wrap(err, "failed to load saved language")
	}

	if lang, ok := srv.detectFromHeader(acceptLanguage); ok {
		return lang, nil
	}

	return entity.DefaultLanguage, nil
}

func (srv *localeService) detectFromHeader(acceptLanguage string) (string, bool) {
	if acceptLanguage == "" {
		return "", false
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return "", false
	}

	languages := srv.translator.Languages()
	for _, tag := range tags {
		base, confidence := tag.Base()
		if confidence != language.No && srv.translator.Supported(base.String()) {
			return base.String(), true
		}

		region, confidence := tag.Region()
		if confidence == language.No {
			continue
		}
		for _, lang := range languages {
			if slices.Contains(lang.Regions, region.String()) {
				return lang.Code, true
			}
		}
	}

	return "", false
}

// SetLanguage persists the language preference.
func (srv *localeService) SetLanguage(ctx context.Context, lang string) error {
	if !srv.translator.Supported(lang) {
		return errors.Wrapf(domainerrors.ErrUnsupportedLanguage, "unsupported language %q", lang)
	}

	if err := srv.localeRepo.SaveLanguage(ctx, lang); err != nil {
		srv.log(ctx).Error("Failed to persist language preference", slog.String("lang", lang), slog.Any("error", err))

		return errors.Wrap(err, "failed to persist language preference")
	}

	srv.log(ctx).Debug("Language preference saved", slog.String("lang", lang))

	return nil
}

// Translations returns the full message table for a supported language.
func (srv *localeService) Translations(_ context.Context, lang string) (map[string]string, error) {
	if !srv.translator.Supported(lang) {
		return nil, errors.Wrapf(domainerrors.ErrUnsupportedLanguage, "unsupported language %q", lang)
	}

	return srv.translator.Translations(lang), nil
}
