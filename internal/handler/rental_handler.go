package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/thspin/proyecto-1/internal/errors"
	"github.com/thspin/proyecto-1/internal/model"
	"github.com/thspin/proyecto-1/internal/service"
)

// RentalHandler handles rental endpoints.
type RentalHandler struct {
	svc service.RentalService
}

// NewRentalHandler creates a new rental handler.
func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

// CreateRentalRequest represents a rental creation payload.
type CreateRentalRequest struct {
	Cuota       int             `json:"cuota" validate:"required,min=1"`
	Vencimiento model.Date      `json:"vencimiento"`
	Inquilino   string          `json:"inquilino" validate:"required"`
	Deuda       decimal.Decimal `json:"deuda"`
	Pagado      decimal.Decimal `json:"pagado"`
	Propiedad   string          `json:"propiedad"`
	Recibo      string          `json:"recibo"`
	UsuarioID   uint            `json:"usuario_id" validate:"required"`
}

// UpdateRentalRequest represents a partial rental update.
type UpdateRentalRequest struct {
	Cuota       *int             `json:"cuota" validate:"omitempty,min=1"`
	Vencimiento *model.Date      `json:"vencimiento"`
	Inquilino   *string          `json:"inquilino"`
	Deuda       *decimal.Decimal `json:"deuda"`
	Pagado      *decimal.Decimal `json:"pagado"`
	Propiedad   *string          `json:"propiedad"`
	Recibo      *string          `json:"recibo"`
}

// Create godoc
// @Summary Create a rental record owned by the caller
// @Tags alquileres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRentalRequest true "Rental data"
// @Success 201 {object} model.Rental
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /alquileres [post]
func (h *RentalHandler) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateRentalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Vencimiento.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "vencimiento is required")
	}

	rental, err := h.svc.Create(c.Request().Context(), actor, service.RentalCreate{
		Cuota:       req.Cuota,
		Vencimiento: req.Vencimiento,
		Inquilino:   req.Inquilino,
		Deuda:       req.Deuda,
		Pagado:      req.Pagado,
		Propiedad:   req.Propiedad,
		Recibo:      req.Recibo,
		UsuarioID:   req.UsuarioID,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, rental)
}

// List godoc
// @Summary List the caller's rentals ordered by due date, then tenant
// @Tags alquileres
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Limit" default(100)
// @Success 200 {array} model.Rental
// @Failure 401 {object} errors.ErrorResponse
// @Router /alquileres [get]
func (h *RentalHandler) List(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	rentals, err := h.svc.List(c.Request().Context(), actor, parsePage(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rentals)
}

// Get godoc
// @Summary Get one of the caller's rentals
// @Tags alquileres
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rental ID"
// @Success 200 {object} model.Rental
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /alquileres/{id} [get]
func (h *RentalHandler) Get(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	rental, err := h.svc.Get(c.Request().Context(), actor, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rental)
}

// Update godoc
// @Summary Partially update one of the caller's rentals
// @Tags alquileres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rental ID"
// @Param request body UpdateRentalRequest true "Fields to update"
// @Success 200 {object} model.Rental
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /alquileres/{id} [put]
func (h *RentalHandler) Update(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateRentalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rental, err := h.svc.Update(c.Request().Context(), actor, id, service.RentalUpdate{
		Cuota:       req.Cuota,
		Vencimiento: req.Vencimiento,
		Inquilino:   req.Inquilino,
		Deuda:       req.Deuda,
		Pagado:      req.Pagado,
		Propiedad:   req.Propiedad,
		Recibo:      req.Recibo,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rental)
}

// Delete godoc
// @Summary Delete one of the caller's rentals
// @Tags alquileres
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rental ID"
// @Success 200 {object} model.Rental
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /alquileres/{id} [delete]
func (h *RentalHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	rental, err := h.svc.Delete(c.Request().Context(), actor, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rental)
}
