package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/thspin/proyecto-1/internal/errors"
	"github.com/thspin/proyecto-1/internal/model"
	"github.com/thspin/proyecto-1/internal/service"
)

// CreditCardHandler handles credit card endpoints.
type CreditCardHandler struct {
	svc service.CreditCardService
}

// NewCreditCardHandler creates a new credit card handler.
func NewCreditCardHandler(svc service.CreditCardService) *CreditCardHandler {
	return &CreditCardHandler{svc: svc}
}

// CreateCreditCardRequest represents a credit card creation payload.
type CreateCreditCardRequest struct {
	Cuotas      int             `json:"cuotas" validate:"required,min=1"`
	Vencimiento model.Date      `json:"vencimiento"`
	Detalle     string          `json:"detalle"`
	Deuda       decimal.Decimal `json:"deuda"`
	Pago        decimal.Decimal `json:"pago"`
	MedioDePago string          `json:"medio_de_pago"`
	UsuarioID   uint            `json:"usuario_id" validate:"required"`
}

// UpdateCreditCardRequest represents a partial credit card update.
type UpdateCreditCardRequest struct {
	Cuotas      *int             `json:"cuotas" validate:"omitempty,min=1"`
	Vencimiento *model.Date      `json:"vencimiento"`
	Detalle     *string          `json:"detalle"`
	Deuda       *decimal.Decimal `json:"deuda"`
	Pago        *decimal.Decimal `json:"pago"`
	MedioDePago *string          `json:"medio_de_pago"`
}

// Create godoc
// @Summary Create a credit card statement owned by the caller
// @Tags tarjetas-credito
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCreditCardRequest true "Credit card data"
// @Success 201 {object} model.CreditCard
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /tarjetas-credito [post]
func (h *CreditCardHandler) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateCreditCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Vencimiento.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "vencimiento is required")
	}

	card, err := h.svc.Create(c.Request().Context(), actor, service.CreditCardCreate{
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
	return c.JSON(http.StatusCreated, card)
}

// List godoc
// @Summary List the caller's credit cards ordered by due date
// @Tags tarjetas-credito
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Limit" default(100)
// @Success 200 {array} model.CreditCard
// @Failure 401 {object} errors.ErrorResponse
// @Router /tarjetas-credito [get]
func (h *CreditCardHandler) List(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	cards, err := h.svc.List(c.Request().Context(), actor, parsePage(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, cards)
}

// Get godoc
// @Summary Get one of the caller's credit cards
// @Tags tarjetas-credito
// @Produce json
// @Security BearerAuth
// @Param id path int true "Credit card ID"
// @Success 200 {object} model.CreditCard
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tarjetas-credito/{id} [get]
func (h *CreditCardHandler) Get(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	card, err := h.svc.Get(c.Request().Context(), actor, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, card)
}

// Update godoc
// @Summary Partially update one of the caller's credit cards
// @Tags tarjetas-credito
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Credit card ID"
// @Param request body UpdateCreditCardRequest true "Fields to update"
// @Success 200 {object} model.CreditCard
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tarjetas-credito/{id} [put]
func (h *CreditCardHandler) Update(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateCreditCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	card, err := h.svc.Update(c.Request().Context(), actor, id, service.CreditCardUpdate{
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
	return c.JSON(http.StatusOK, card)
}

// Delete godoc
// @Summary Delete one of the caller's credit cards
// @Tags tarjetas-credito
// @Produce json
// @Security BearerAuth
// @Param id path int true "Credit card ID"
// @Success 200 {object} model.CreditCard
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tarjetas-credito/{id} [delete]
func (h *CreditCardHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	card, err := h.svc.Delete(c.Request().Context(), actor, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, card)
}
