package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeInvalidPayload      = 4001
	CodeMissingSignature    = 4002
	CodeMissingExtras       = 4003
	CodeMissingOrderID      = 4004
	CodeInvalidStatus       = 4005
	CodeNegativeAmount      = 4006
	CodeInvalidSignature    = 4010
	CodeProductNotFound     = 4040
	CodeTransactionNotFound = 4041

	// 5xxx - Server errors
	CodeInternalServer      = 5000
	CodeSecretNotConfigured = 5001
	CodeDatabaseError       = 5002
	CodePaymentProvider     = 5003
)

// Base error types
var (
	// ErrWebhookSecretMissing is returned when a provider's signing secret is
	// not configured. This is a server misconfiguration, never an
	// authentication failure.
	ErrWebhookSecretMissing = errors.New("webhook secret is not configured")

	// ErrMissingSignature is returned when a webhook call carries no signature
	ErrMissingSignature = errors.New("missing webhook signature")

	// ErrInvalidSignature is returned when the recomputed signature does not
	// match the claimed one
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrInvalidPayload is returned when a provider payload cannot be decoded
	ErrInvalidPayload = errors.New("invalid webhook payload")

	// ErrMissingExtras is returned when a provider event lacks the passthrough
	// fields carrying the business key and owner
	ErrMissingExtras = errors.New("missing passthrough fields in webhook payload")

	// ErrMissingOrderID is returned when a transaction has no business key
	ErrMissingOrderID = errors.New("transaction order ID cannot be empty")

	// ErrInvalidStatus is returned when a status value is not one of the
	// canonical transaction statuses
	ErrInvalidStatus = errors.New("invalid transaction status")

	// ErrNegativeAmount is returned when the transaction amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProductNotFound is returned when the requested product doesn't exist
	ErrProductNotFound = errors.New("product not found")

	// ErrUnsupportedCurrency is returned for currencies the catalog has no
	// price for
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrTransactionNotFound is returned when the requested transaction
	// doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDatabaseConnection is returned when there's a problem talking to the
	// database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrPaymentProvider is returned when an outbound call to a payment
	// provider API fails
	ErrPaymentProvider = errors.New("payment provider request failed")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidPayload):
		return CodeInvalidPayload
	case errors.Is(err, ErrMissingSignature):
		return CodeMissingSignature
	case errors.Is(err, ErrMissingExtras):
		return CodeMissingExtras
	case errors.Is(err, ErrMissingOrderID):
		return CodeMissingOrderID
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrUnsupportedCurrency):
		return CodeInvalidStatus
	case errors.Is(err, ErrNegativeAmount):
		return CodeNegativeAmount
	case errors.Is(err, ErrInvalidSignature):
		return CodeInvalidSignature
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrProductNotFound):
		return CodeProductNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrWebhookSecretMissing):
		return CodeSecretNotConfigured
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseError
	case errors.Is(err, ErrPaymentProvider):
		return CodePaymentProvider
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error to the HTTP status a webhook or API
// response should carry. Configuration and persistence failures are 5xx so
// the provider retries; authentication and validation failures are 4xx so
// it does not.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidSignature):
		return http.StatusUnauthorized
	case errors.Is(err, ErrProductNotFound), errors.Is(err, ErrTransactionNotFound), errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingSignature),
		errors.Is(err, ErrInvalidPayload),
		errors.Is(err, ErrMissingExtras),
		errors.Is(err, ErrMissingOrderID),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrUnsupportedCurrency),
		errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// IsConfigurationError checks if the error is a server misconfiguration
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrWebhookSecretMissing)
}

// IsAuthenticationError checks if the error is a signature failure
func IsAuthenticationError(err error) bool {
	return errors.Is(err, ErrMissingSignature) || errors.Is(err, ErrInvalidSignature)
}

// IsValidationError checks if the error is a malformed or under-specified
// event payload
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidPayload) ||
		errors.Is(err, ErrMissingExtras) ||
		errors.Is(err, ErrMissingOrderID) ||
		errors.Is(err, ErrInvalidStatus)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// WebhookError represents an error raised while reconciling a webhook event
type WebhookError struct {
	Provider  string
	OrderID   string
	Reference string
	Reason    string
	Err       error
}

// Error implements the error interface for WebhookError
func (e *WebhookError) Error() string {
	return fmt.Sprintf("webhook error from %s (order: %s, reference: %s): %s - %v",
		e.Provider, e.OrderID, e.Reference, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *WebhookError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *WebhookError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "webhook_error",
		"provider":   e.Provider,
		"order_id":   e.OrderID,
		"reference":  e.Reference,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewWebhookError creates a detailed webhook reconciliation error
func NewWebhookError(provider, orderID, reference, reason string, err error) error {
	return &WebhookError{
		Provider:  provider,
		OrderID:   orderID,
		Reference: reference,
		Reason:    reason,
		Err:       err,
	}
}
