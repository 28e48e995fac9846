package handler

import (
	"log/slog"
	"net/http"

	"mydrip/internal/delivery/http/response"
	"mydrip/internal/domain/entity"
	"mydrip/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for wardrobe-wide handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// Stats returns wardrobe statistics.
func (h *ProfileHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Statistics retrieved successfully")
}

// Export returns the portable wardrobe document as a download.
func (h *ProfileHandler) Export(c echo.Context) error {
	doc, err := h.uc.Export(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+doc.SuggestedFilename()+`"`)

	return c.JSON(http.StatusOK, doc)
}

// Import replaces the wardrobe contents from an uploaded document.
func (h *ProfileHandler) Import(c echo.Context) error {
	var doc *entity.ExportDocument
	if err := c.Bind(&doc); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid import document")
	}

	if err := h.uc.Import(c.Request().Context(), doc); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Wardrobe imported successfully")
}

// ClearAll deletes items, outfits and measurements.
func (h *ProfileHandler) ClearAll(c echo.Context) error {
	if err := h.uc.ClearAll(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Wardrobe cleared successfully")
}
