package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid payload", ErrInvalidPayload, CodeInvalidPayload},
		{"missing signature", ErrMissingSignature, CodeMissingSignature},
		{"missing extras", ErrMissingExtras, CodeMissingExtras},
		{"invalid signature", ErrInvalidSignature, CodeInvalidSignature},
		{"product not found", ErrProductNotFound, CodeProductNotFound},
		{"secret not configured", ErrWebhookSecretMissing, CodeSecretNotConfigured},
		{"database error", ErrDatabaseConnection, CodeDatabaseError},
		{"payment provider", ErrPaymentProvider, CodePaymentProvider},
		{"unknown error", errors.New("boom"), CodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorCode(tt.err))
		})
	}

	t.Run("should resolve wrapped errors", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: extra context", ErrInvalidSignature)
		assert.Equal(t, CodeInvalidSignature, ErrorCode(wrapped))
	})
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, HTTPStatus(nil))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(ErrInvalidSignature))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrMissingSignature))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrInvalidPayload))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrMissingExtras))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrProductNotFound))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(ErrWebhookSecretMissing))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(ErrDatabaseConnection))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestErrorClassifiers(t *testing.T) {
	assert.True(t, IsConfigurationError(ErrWebhookSecretMissing))
	assert.False(t, IsConfigurationError(ErrInvalidSignature))

	assert.True(t, IsAuthenticationError(ErrInvalidSignature))
	assert.True(t, IsAuthenticationError(ErrMissingSignature))
	assert.False(t, IsAuthenticationError(ErrInvalidPayload))

	assert.True(t, IsValidationError(ErrInvalidPayload))
	assert.True(t, IsValidationError(ErrMissingExtras))
	assert.False(t, IsValidationError(ErrInvalidSignature))

	assert.True(t, IsNotFoundError(ErrProductNotFound))
	assert.True(t, IsNotFoundError(ErrTransactionNotFound))
	assert.False(t, IsNotFoundError(ErrInvalidRequest))
}

func TestWebhookError(t *testing.T) {
	cause := ErrDatabaseConnection
	err := NewWebhookError("bold", "order-1", "ref-1", "failed to persist transaction", cause)

	t.Run("should unwrap to the underlying error", func(t *testing.T) {
		assert.ErrorIs(t, err, cause)
	})

	t.Run("should describe the failure", func(t *testing.T) {
		assert.Contains(t, err.Error(), "bold")
		assert.Contains(t, err.Error(), "order-1")
		assert.Contains(t, err.Error(), "failed to persist transaction")
	})

	t.Run("should expose structured log fields", func(t *testing.T) {
		var webhookErr *WebhookError
		assert.ErrorAs(t, err, &webhookErr)

		fields := webhookErr.LogFields()
		assert.Equal(t, "bold", fields["provider"])
		assert.Equal(t, "order-1", fields["order_id"])
		assert.Equal(t, CodeDatabaseError, fields["error_code"])
	})
}
