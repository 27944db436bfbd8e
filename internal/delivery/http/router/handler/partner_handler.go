// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"partnerhub/internal/delivery/http/response"
	domainerrors "partnerhub/internal/domain/errors"
	"partnerhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PartnerHandler holds dependencies for partner-related handlers.
type PartnerHandler struct {
	uc     usecase.PartnerUsecase
	logger *slog.Logger
}

// NewPartnerHandler is the constructor for PartnerHandler, injected by Fx.
func NewPartnerHandler(uc usecase.PartnerUsecase, logger *slog.Logger) *PartnerHandler {
	return &PartnerHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the partner creation request.
func (h *PartnerHandler) Create(c echo.Context) error {
	var input *usecase.CreatePartnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid partner input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	output, err := h.uc.CreatePartner(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Partner created successfully")
}

// Update handles the partial partner update request.
func (h *PartnerHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid partner id")
	}

	var input *usecase.UpdatePartnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid partner input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	output, err := h.uc.UpdatePartner(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Partner updated successfully")
}

// Delete handles the partner soft-delete request.
func (h *PartnerHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid partner id")
	}

	output, err := h.uc.DeletePartner(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Partner deleted successfully")
}

// Get handles the single partner lookup request.
func (h *PartnerHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid partner id")
	}

	partner, err := h.uc.GetPartner(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partner, "Partner retrieved successfully")
}

// List handles the partner listing request.
func (h *PartnerHandler) List(c echo.Context) error {
	partners, err := h.uc.ListPartners(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partners, "Partners retrieved successfully")
}
