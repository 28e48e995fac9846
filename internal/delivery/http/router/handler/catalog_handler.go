package handler

import (
	"log/slog"
	"net/http"

	"mydrip/internal/delivery/http/response"
	"mydrip/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for external catalog handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// Search handles the catalog search request.
func (h *CatalogHandler) Search(c echo.Context) error {
	input := &usecase.CatalogSearchInput{
		Query:    c.QueryParam("q"),
		Category: c.QueryParam("category"),
	}

	products, err := h.uc.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Catalog search completed successfully")
}
