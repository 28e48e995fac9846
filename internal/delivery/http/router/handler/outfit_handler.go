package handler

import (
	"log/slog"
	"net/http"

	"mydrip/internal/delivery/http/response"
	"mydrip/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OutfitHandler holds dependencies for outfit handlers.
type OutfitHandler struct {
	uc     usecase.OutfitUsecase
	logger *slog.Logger
}

// NewOutfitHandler is the constructor for OutfitHandler, injected by Fx.
func NewOutfitHandler(uc usecase.OutfitUsecase, logger *slog.Logger) *OutfitHandler {
	return &OutfitHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateOutfit handles the request to create an outfit.
func (h *OutfitHandler) CreateOutfit(c echo.Context) error {
	var input *usecase.CreateOutfitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid outfit input")
	}

	outfit, err := h.uc.CreateOutfit(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, outfit, "Outfit created successfully")
}

// RemoveOutfit handles the request to remove an outfit.
func (h *OutfitHandler) RemoveOutfit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid outfit id")
	}

	if err := h.uc.RemoveOutfit(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Outfit removed successfully")
}

// ListOutfits handles the request to list outfits.
func (h *OutfitHandler) ListOutfits(c echo.Context) error {
	filter := &usecase.OutfitFilter{
		Season: c.QueryParam("season"),
		Sort:   c.QueryParam("sort"),
	}

	outfits, err := h.uc.ListOutfits(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outfits, "Outfits retrieved successfully")
}

// RandomOutfit handles the request to assemble a random outfit suggestion.
// The suggestion is not persisted.
func (h *OutfitHandler) RandomOutfit(c echo.Context) error {
	outfit, err := h.uc.RandomOutfit(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outfit, "Outfit assembled successfully")
}

// ShareQR handles the request to render an outfit share QR code as PNG.
func (h *OutfitHandler) ShareQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid outfit id")
	}

	png, err := h.uc.ShareQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
