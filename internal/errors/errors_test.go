package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		err          error
		expectedCode int
		expectedTag  string
	}{
		{ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{ErrCategoryNotFound, http.StatusNotFound, "CATEGORY_NOT_FOUND"},
		{ErrTransactionNotFound, http.StatusNotFound, "TRANSACTION_NOT_FOUND"},
		{ErrCreditCardNotFound, http.StatusNotFound, "CREDIT_CARD_NOT_FOUND"},
		{ErrOtherCreditNotFound, http.StatusNotFound, "OTHER_CREDIT_NOT_FOUND"},
		{ErrRentalNotFound, http.StatusNotFound, "RENTAL_NOT_FOUND"},
		{ErrServiceNotFound, http.StatusNotFound, "SERVICE_NOT_FOUND"},
		{ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{ErrInvalidRefreshToken, http.StatusUnauthorized, "INVALID_REFRESH_TOKEN"},
		{ErrEmailTaken, http.StatusBadRequest, "EMAIL_TAKEN"},
		{ErrCategoryInUse, http.StatusBadRequest, "CATEGORY_IN_USE"},
		{ErrCategoryRef, http.StatusBadRequest, "INVALID_CATEGORY"},
	}

	for _, tt := range tests {
		t.Run(tt.expectedTag, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedCode, httpErr.StatusCode)
			assert.Equal(t, tt.expectedTag, httpErr.Code)
			assert.Equal(t, tt.err.Error(), httpErr.Message)
		})
	}
}

func TestMapErrorToHTTP_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("loading record: %w", ErrRentalNotFound)
	httpErr := MapErrorToHTTP(wrapped)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "RENTAL_NOT_FOUND", httpErr.Code)
}

func TestMapErrorToHTTP_UnknownError(t *testing.T) {
	// Internal failures never leak their message to clients.
	httpErr := MapErrorToHTTP(assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", httpErr.Code)
	assert.Equal(t, "internal server error", httpErr.Message)
}

func TestHTTPErrorResponse(t *testing.T) {
	httpErr := NewHTTPError(http.StatusForbidden, "sin permiso", "FORBIDDEN")
	assert.Equal(t, "sin permiso", httpErr.Error())

	resp := httpErr.ToErrorResponse()
	assert.Equal(t, "sin permiso", resp.Error)
	assert.Equal(t, "FORBIDDEN", resp.Code)
}
