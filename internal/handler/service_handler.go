package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/thspin/proyecto-1/internal/errors"
	"github.com/thspin/proyecto-1/internal/model"
	"github.com/thspin/proyecto-1/internal/service"
)

// ServiceHandler handles recurring service bill endpoints.
type ServiceHandler struct {
	svc service.ServiceService
}

// NewServiceHandler creates a new service handler.
func NewServiceHandler(svc service.ServiceService) *ServiceHandler {
	return &ServiceHandler{svc: svc}
}

// CreateServiceRequest represents a service bill creation payload.
type CreateServiceRequest struct {
	Vencimiento model.Date      `json:"vencimiento"`
	Servicio    string          `json:"servicio" validate:"required"`
	Detalle     string          `json:"detalle"`
	Cuenta      string          `json:"cuenta"`
	MontoARS    decimal.Decimal `json:"monto_ars"`
	MontoUSD    decimal.Decimal `json:"monto_usd"`
	UsuarioID   uint            `json:"usuario_id" validate:"required"`
}

// UpdateServiceRequest represents a partial service bill update.
type UpdateServiceRequest struct {
	Vencimiento *model.Date      `json:"vencimiento"`
	Servicio    *string          `json:"servicio"`
	Detalle     *string          `json:"detalle"`
	Cuenta      *string          `json:"cuenta"`
	MontoARS    *decimal.Decimal `json:"monto_ars"`
	MontoUSD    *decimal.Decimal `json:"monto_usd"`
}

// Create godoc
// @Summary Create a service bill owned by the caller
// @Tags servicios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateServiceRequest true "Service data"
// @Success 201 {object} model.Service
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /servicios [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Vencimiento.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "vencimiento is required")
	}

	svc, err := h.svc.Create(c.Request().Context(), actor, service.ServiceCreate{
		Vencimiento: req.Vencimiento,
		Servicio:    req.Servicio,
		Detalle:     req.Detalle,
		Cuenta:      req.Cuenta,
		MontoARS:    req.MontoARS,
		MontoUSD:    req.MontoUSD,
		UsuarioID:   req.UsuarioID,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, svc)
}

// List godoc
// @Summary List the caller's service bills ordered by due date, then name
// @Tags servicios
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Limit" default(100)
// @Success 200 {array} model.Service
// @Failure 401 {object} errors.ErrorResponse
// @Router /servicios [get]
func (h *ServiceHandler) List(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	services, err := h.svc.List(c.Request().Context(), actor, parsePage(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, services)
}

// Get godoc
// @Summary Get one of the caller's service bills
// @Tags servicios
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 200 {object} model.Service
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /servicios/{id} [get]
func (h *ServiceHandler) Get(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	svc, err := h.svc.Get(c.Request().Context(), actor, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, svc)
}

// Update godoc
// @Summary Partially update one of the caller's service bills
// @Tags servicios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param request body UpdateServiceRequest true "Fields to update"
// @Success 200 {object} model.Service
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /servicios/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.svc.Update(c.Request().Context(), actor, id, service.ServiceUpdate{
		Vencimiento: req.Vencimiento,
		Servicio:    req.Servicio,
		Detalle:     req.Detalle,
		Cuenta:      req.Cuenta,
		MontoARS:    req.MontoARS,
		MontoUSD:    req.MontoUSD,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, svc)
}

// Delete godoc
// @Summary Delete one of the caller's service bills
// @Tags servicios
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 200 {object} model.Service
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /servicios/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	svc, err := h.svc.Delete(c.Request().Context(), actor, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, svc)
}
