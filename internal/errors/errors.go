package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user row does not exist.
	ErrUserNotFound = errors.New("usuario no encontrado")
	// ErrCategoryNotFound is returned when a category row does not exist.
	ErrCategoryNotFound = errors.New("categoría no encontrada")
	// ErrTransactionNotFound is returned when a transaction row does not exist.
	ErrTransactionNotFound = errors.New("transacción no encontrada")
	// ErrCreditCardNotFound is returned when a credit card row does not exist.
	ErrCreditCardNotFound = errors.New("tarjeta de crédito no encontrada")
	// ErrOtherCreditNotFound is returned when an other-credit row does not exist.
	ErrOtherCreditNotFound = errors.New("crédito no encontrado")
	// ErrRentalNotFound is returned when a rental row does not exist.
	ErrRentalNotFound = errors.New("alquiler no encontrado")
	// ErrServiceNotFound is returned when a service row does not exist.
	ErrServiceNotFound = errors.New("servicio no encontrado")

	// ErrForbidden is returned when the row exists but the actor lacks rights on it.
	ErrForbidden = errors.New("no tiene permiso para acceder a este recurso")
	// ErrInvalidCredentials is returned on a bad login or a rejected token.
	ErrInvalidCredentials = errors.New("email o contraseña incorrectos")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid, revoked or expired.
	ErrInvalidRefreshToken = errors.New("refresh token inválido o expirado")
	// ErrEmailTaken is returned when registering an already used email.
	ErrEmailTaken = errors.New("el email ya está registrado")
	// ErrCategoryInUse is returned when deleting a category with referencing transactions.
	ErrCategoryInUse = errors.New("no se puede eliminar la categoría porque tiene transacciones asociadas")
	// ErrCategoryRef is returned when a payload references a category that does not exist.
	ErrCategoryRef = errors.New("la categoría referenciada no existe")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrTransactionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRANSACTION_NOT_FOUND")
	case errors.Is(err, ErrCreditCardNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CREDIT_CARD_NOT_FOUND")
	case errors.Is(err, ErrOtherCreditNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "OTHER_CREDIT_NOT_FOUND")
	case errors.Is(err, ErrRentalNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RENTAL_NOT_FOUND")
	case errors.Is(err, ErrServiceNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SERVICE_NOT_FOUND")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_REFRESH_TOKEN")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrCategoryInUse):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CATEGORY_IN_USE")
	case errors.Is(err, ErrCategoryRef):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CATEGORY")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
