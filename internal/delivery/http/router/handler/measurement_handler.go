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

// MeasurementHandler holds dependencies for body measurement handlers.
type MeasurementHandler struct {
	uc     usecase.MeasurementUsecase
	logger *slog.Logger
}

// NewMeasurementHandler is the constructor for MeasurementHandler, injected by Fx.
func NewMeasurementHandler(uc usecase.MeasurementUsecase, logger *slog.Logger) *MeasurementHandler {
	return &MeasurementHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns the current measurements, defaults if none were saved yet.
func (h *MeasurementHandler) Get(c echo.Context) error {
	m, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, m, "Measurements retrieved successfully")
}

// Update replaces the whole measurement set.
func (h *MeasurementHandler) Update(c echo.Context) error {
	var input entity.Measurements
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid measurements input")
	}

	m, err := h.uc.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, m, "Measurements updated successfully")
}

// ApplyPreset overwrites measurements with a named size preset.
func (h *MeasurementHandler) ApplyPreset(c echo.Context) error {
	var input struct {
		Preset string `json:"preset"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preset input")
	}

	m, err := h.uc.ApplyPreset(c.Request().Context(), input.Preset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, m, "Preset applied successfully")
}

// Figure returns the mannequin proportions derived from the measurements.
func (h *MeasurementHandler) Figure(c echo.Context) error {
	figure, err := h.uc.Figure(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, figure, "Figure retrieved successfully")
}
