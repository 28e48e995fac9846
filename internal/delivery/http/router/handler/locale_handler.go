package handler

import (
	"log/slog"
	"net/http"

	"mydrip/internal/delivery/http/response"
	"mydrip/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LocaleHandler holds dependencies for language handlers.
type LocaleHandler struct {
	uc     usecase.LocaleUsecase
	logger *slog.Logger
}

// NewLocaleHandler is the constructor for LocaleHandler, injected by Fx.
func NewLocaleHandler(uc usecase.LocaleUsecase, logger *slog.Logger) *LocaleHandler {
	return &LocaleHandler{
		uc:     uc,
		logger: logger,
	}
}

// Languages lists the supported interface languages.
func (h *LocaleHandler) Languages(c echo.Context) error {
	languages, err := h.uc.Languages(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, languages, "Languages retrieved successfully")
}

// Detect resolves the effective language from the saved preference and the
// Accept-Language header.
func (h *LocaleHandler) Detect(c echo.Context) error {
	lang, err := h.uc.Detect(c.Request().Context(), c.Request().Header.Get("Accept-Language"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"language": lang}, "Language detected successfully")
}

// SetLanguage persists the language preference.
func (h *LocaleHandler) SetLanguage(c echo.Context) error {
	var input struct {
		Language string `json:"language"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid language input")
	}

	if err := h.uc.SetLanguage(c.Request().Context(), input.Language); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"language": input.Language}, "Language updated successfully")
}

// Translations returns the message table for a language.
func (h *LocaleHandler) Translations(c echo.Context) error {
	messages, err := h.uc.Translations(c.Request().Context(), c.Param("lang"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "Translations retrieved successfully")
}
