package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/thspin/proyecto-1/internal/errors"
	"github.com/thspin/proyecto-1/internal/model"
	"github.com/thspin/proyecto-1/internal/repository"
	"github.com/thspin/proyecto-1/internal/service"
)

// TransactionHandler handles transaction endpoints.
type TransactionHandler struct {
	svc service.TransactionService
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(svc service.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// CreateTransactionRequest represents a transaction creation payload.
type CreateTransactionRequest struct {
	Fecha       model.Date         `json:"fecha"`
	Tipo        model.MovementType `json:"tipo" validate:"required,oneof=ingreso egreso"`
	CategoriaID uint               `json:"categoria_id" validate:"required"`
	Detalle     string             `json:"detalle"`
	Monto       decimal.Decimal    `json:"monto"`
	MedioDePago string             `json:"medio_de_pago"`
	UsuarioID   uint               `json:"usuario_id" validate:"required"`
}

// UpdateTransactionRequest represents a partial transaction update.
// Absent fields are left untouched; the owner cannot be changed.
type UpdateTransactionRequest struct {
	Fecha       *model.Date         `json:"fecha"`
	Tipo        *model.MovementType `json:"tipo" validate:"omitempty,oneof=ingreso egreso"`
	CategoriaID *uint               `json:"categoria_id"`
	Detalle     *string             `json:"detalle"`
	Monto       *decimal.Decimal    `json:"monto"`
	MedioDePago *string             `json:"medio_de_pago"`
}

// Create godoc
// @Summary Create a transaction owned by the caller
// @Tags transacciones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "Transaction data"
// @Success 201 {object} model.Transaction
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /transacciones [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Fecha.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "fecha is required")
	}

	transaction, err := h.svc.Create(c.Request().Context(), actor, service.TransactionCreate{
		Fecha:       req.Fecha,
		Tipo:        req.Tipo,
		CategoriaID: req.CategoriaID,
		Detalle:     req.Detalle,
		Monto:       req.Monto,
		MedioDePago: req.MedioDePago,
		UsuarioID:   req.UsuarioID,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, transaction)
}

// List godoc
// @Summary List the caller's transactions ordered by date, newest first
// @Tags transacciones
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Limit" default(100)
// @Param tipo query string false "Filter by movement type" Enums(ingreso, egreso)
// @Param categoria_id query int false "Filter by category"
// @Success 200 {array} model.Transaction
// @Failure 401 {object} errors.ErrorResponse
// @Router /transacciones [get]
func (h *TransactionHandler) List(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	filter := repository.TransactionFilter{
		Tipo: model.MovementType(c.QueryParam("tipo")),
		Page: parsePage(c),
	}
	if v := c.QueryParam("categoria_id"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			filter.CategoriaID = uint(parsed)
		}
	}

	transactions, err := h.svc.List(c.Request().Context(), actor, filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, transactions)
}

// Get godoc
// @Summary Get one of the caller's transactions
// @Tags transacciones
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} model.Transaction
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /transacciones/{id} [get]
func (h *TransactionHandler) Get(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	transaction, err := h.svc.Get(c.Request().Context(), actor, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, transaction)
}

// Update godoc
// @Summary Partially update one of the caller's transactions
// @Tags transacciones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param request body UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} model.Transaction
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /transacciones/{id} [put]
func (h *TransactionHandler) Update(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	transaction, err := h.svc.Update(c.Request().Context(), actor, id, service.TransactionUpdate{
		Fecha:       req.Fecha,
		Tipo:        req.Tipo,
		CategoriaID: req.CategoriaID,
		Detalle:     req.Detalle,
		Monto:       req.Monto,
		MedioDePago: req.MedioDePago,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, transaction)
}

// Delete godoc
// @Summary Delete one of the caller's transactions
// @Tags transacciones
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} model.Transaction
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /transacciones/{id} [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	transaction, err := h.svc.Delete(c.Request().Context(), actor, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, transaction)
}
