package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/thspin/proyecto-1/internal/errors"
	"github.com/thspin/proyecto-1/internal/model"
	"github.com/thspin/proyecto-1/internal/service"
)

// OtherCreditHandler handles miscellaneous credit endpoints.
type OtherCreditHandler struct {
	svc service.OtherCreditService
}

// NewOtherCreditHandler creates a new other-credit handler.
func NewOtherCreditHandler(svc service.OtherCreditService) *OtherCreditHandler {
	return &OtherCreditHandler{svc: svc}
}

// CreateOtherCreditRequest represents an other-credit creation payload.
type CreateOtherCreditRequest struct {
	Cuotas      int             `json:"cuotas" validate:"required,min=1"`
	Vencimiento model.Date      `json:"vencimiento"`
	Detalle     string          `json:"detalle"`
	Deuda       decimal.Decimal `json:"deuda"`
	Pago        decimal.Decimal `json:"pago"`
	MedioDePago string          `json:"medio_de_pago"`
	UsuarioID   uint            `json:"usuario_id" validate:"required"`
}

// UpdateOtherCreditRequest represents a partial other-credit update.
type UpdateOtherCreditRequest struct {
	Cuotas      *int             `json:"cuotas" validate:"omitempty,min=1"`
	Vencimiento *model.Date      `json:"vencimiento"`
	Detalle     *string          `json:"detalle"`
	Deuda       *decimal.Decimal `json:"deuda"`
	Pago        *decimal.Decimal `json:"pago"`
	MedioDePago *string          `json:"medio_de_pago"`
}

// Create godoc
// @Summary Create a miscellaneous credit owned by the caller
// @Tags otros-creditos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateOtherCreditRequest true "Credit data"
// @Success 201 {object} model.OtherCredit
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /otros-creditos [post]
func (h *OtherCreditHandler) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateOtherCreditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Vencimiento.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "vencimiento is required")
	}

	credit, err := h.svc.Create(c.Request().Context(), actor, service.OtherCreditCreate{
		Cuotas:      req.Cuotas,
		Vencimiento: req.Vencimiento,
		Detalle:     req.Detalle,
		Deuda:       req.Deuda,
		Pago:        req.Pago,
		MedioDePago: req.MedioDePago,
		UsuarioID:   req.UsuarioID,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, credit)
}

// List godoc
// @Summary List the caller's miscellaneous credits ordered by due date
// @Tags otros-creditos
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Limit" default(100)
// @Success 200 {array} model.OtherCredit
// @Failure 401 {object} errors.ErrorResponse
// @Router /otros-creditos [get]
func (h *OtherCreditHandler) List(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	credits, err := h.svc.List(c.Request().Context(), actor, parsePage(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, credits)
}

// Get godoc
// @Summary Get one of the caller's miscellaneous credits
// @Tags otros-creditos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Credit ID"
// @Success 200 {object} model.OtherCredit
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /otros-creditos/{id} [get]
func (h *OtherCreditHandler) Get(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	credit, err := h.svc.Get(c.Request().Context(), actor, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, credit)
}

// Update godoc
// @Summary Partially update one of the caller's miscellaneous credits
// @Tags otros-creditos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Credit ID"
// @Param request body UpdateOtherCreditRequest true "Fields to update"
// @Success 200 {object} model.OtherCredit
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /otros-creditos/{id} [put]
func (h *OtherCreditHandler) Update(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateOtherCreditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	credit, err := h.svc.Update(c.Request().Context(), actor, id, service.OtherCreditUpdate{
		Cuotas:      req.Cuotas,
		Vencimiento: req.Vencimiento,
		Detalle:     req.Detalle,
		Deuda:       req.Deuda,
		Pago:        req.Pago,
		MedioDePago: req.MedioDePago,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, credit)
}

// Delete godoc
// @Summary Delete one of the caller's miscellaneous credits
// @Tags otros-creditos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Credit ID"
// @Success 200 {object} model.OtherCredit
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /otros-creditos/{id} [delete]
func (h *OtherCreditHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	credit, err := h.svc.Delete(c.Request().Context(), actor, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, credit)
}
