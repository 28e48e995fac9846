package handler

import (
	"log/slog"
	"net/http"

	"mydrip/internal/delivery/http/response"
	"mydrip/internal/domain/entity"
	"mydrip/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WardrobeHandler holds dependencies for wardrobe item handlers.
type WardrobeHandler struct {
	uc     usecase.WardrobeUsecase
	logger *slog.Logger
}

// NewWardrobeHandler is the constructor for WardrobeHandler, injected by Fx.
func NewWardrobeHandler(uc usecase.WardrobeUsecase, logger *slog.Logger) *WardrobeHandler {
	return &WardrobeHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddItem handles the request to add a wardrobe item.
func (h *WardrobeHandler) AddItem(c echo.Context) error {
	var input *usecase.AddItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	item, err := h.uc.AddItem(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Item added successfully")
}

// AddFromCatalog handles the request to add a catalog product to the wardrobe.
func (h *WardrobeHandler) AddFromCatalog(c echo.Context) error {
	var product *entity.CatalogProduct
	if err := c.Bind(&product); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid catalog product input")
	}

	item, err := h.uc.AddFromCatalog(c.Request().Context(), product)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Item added successfully")
}

// RemoveItem handles the request to remove a wardrobe item.
func (h *WardrobeHandler) RemoveItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item id")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed successfully")
}

// ListItems handles the request to list wardrobe items. Filters and sort
// order come from query parameters.
func (h *WardrobeHandler) ListItems(c echo.Context) error {
	filter := &usecase.ItemFilter{
		Category: c.QueryParam("category"),
		Season:   c.QueryParam("season"),
		Search:   c.QueryParam("search"),
		Sort:     c.QueryParam("sort"),
	}

	items, err := h.uc.ListItems(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Items retrieved successfully")
}
