package webhook

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/easybots/storefront-backend/internal/domain/entity"
	errs "github.com/easybots/storefront-backend/internal/domain/error"
)

// Bold event type discriminators. Anything else is ignored with a no-op.
const (
	BoldEventTransactionCreated = "transaction.created"
	BoldEventTransactionUpdated = "transaction.updated"
)

// BoldEvent is the raw shape of a Bold webhook payload
type BoldEvent struct {
	Event string   `json:"event"`
	Data  BoldData `json:"data"`
}

// BoldData carries the transaction fields of a Bold event. The nested
// payment method metadata and customer blocks are optional; absent levels
// decode to nil and are defaulted during normalization.
type BoldData struct {
	ID            string             `json:"id"`
	Reference     string             `json:"reference"`
	AmountInCents int64              `json:"amount_in_cents"`
	Currency      string             `json:"currency"`
	Status        string             `json:"status"`
	PaymentMethod *BoldPaymentMethod `json:"payment_method"`
	Customer      *BoldCustomer      `json:"customer"`
}

// BoldPaymentMethod wraps the metadata echoed back from payment-link creation
type BoldPaymentMethod struct {
	Metadata *BoldMetadata `json:"metadata"`
}

// BoldMetadata carries the business identifiers smuggled through the
// payment-link request
type BoldMetadata struct {
	ProductID string `json:"productId"`
	UserID    string `json:"userId"`
}

// BoldCustomer carries the purchaser's display details
type BoldCustomer struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// ParseBoldEvent decodes a signature-verified Bold webhook body
func ParseBoldEvent(rawBody []byte) (*BoldEvent, error) {
	var event BoldEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidPayload, err.Error())
	}
	if event.Event == "" {
		return nil, fmt.Errorf("%w: missing event type", errs.ErrInvalidPayload)
	}
	return &event, nil
}

// Transaction normalizes the event into the canonical transaction record.
// Missing optional fields default rather than propagate as empty: productId
// falls back to "unknown", userId to the anonymous sentinel, customer
// display fields to "N/A". The amount arrives in minor units and is
// converted to display units.
func (e *BoldEvent) Transaction() *entity.Transaction {
	metadata := &BoldMetadata{}
	if e.Data.PaymentMethod != nil && e.Data.PaymentMethod.Metadata != nil {
		metadata = e.Data.PaymentMethod.Metadata
	}
	customer := &BoldCustomer{}
	if e.Data.Customer != nil {
		customer = e.Data.Customer
	}

	return &entity.Transaction{
		OrderID:       e.Data.Reference,
		ProductID:     fallback(metadata.ProductID, entity.UnknownProductID),
		UserID:        fallback(metadata.UserID, entity.AnonymousUserID),
		Amount:        float64(e.Data.AmountInCents) / 100,
		Currency:      e.Data.Currency,
		Status:        mapBoldStatus(e.Data.Status),
		Reference:     e.Data.Reference,
		CustomerName:  fallback(customer.Name, entity.UnknownCustomer),
		CustomerEmail: fallback(customer.Email, entity.UnknownCustomer),
		CustomerPhone: fallback(customer.PhoneNumber, entity.UnknownCustomer),
	}
}

// IsCreated reports whether this is a created-class event
func (e *BoldEvent) IsCreated() bool {
	return e.Event == BoldEventTransactionCreated
}

// IsUpdated reports whether this is an updated-class event
func (e *BoldEvent) IsUpdated() bool {
	return e.Event == BoldEventTransactionUpdated
}

// mapBoldStatus translates Bold's transaction status vocabulary into the
// canonical status set. Unknown values map to FAILED rather than inventing
// a state.
func mapBoldStatus(status string) entity.TransactionStatus {
	switch strings.ToUpper(status) {
	case "PAID", "APPROVED":
		return entity.StatusPaid
	case "PENDING", "PROCESSING":
		return entity.StatusPending
	case "VOIDED", "CANCELLED":
		return entity.StatusCancelled
	default:
		return entity.StatusFailed
	}
}

// fallback returns value, or def when value is empty
func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
