package entity

import (
	"fmt"
	"time"

	errs "github.com/easybots/storefront-backend/internal/domain/error"
)

// TransactionStatus represents the canonical payment status of a transaction
type TransactionStatus string

// Canonical transaction statuses, shared across all payment providers
const (
	StatusPaid      TransactionStatus = "PAID"
	StatusPending   TransactionStatus = "PENDING"
	StatusFailed    TransactionStatus = "FAILED"
	StatusCancelled TransactionStatus = "CANCELLED"
)

// AnonymousUserID is the sentinel owner for purchases observed without an
// authenticated user. Anonymous transactions are never persisted.
const AnonymousUserID = "anonymous"

// Fallback values applied by the event normalizers when a provider payload
// omits optional fields
const (
	UnknownProductID = "unknown"
	UnknownCustomer  = "N/A"
)

// Transaction is the canonical record of one purchase attempt, reconciled
// from the webhook payloads of any supported payment provider
type Transaction struct {
	ID            string            // Generated document identifier
	OrderID       string            // Business key minted at checkout time
	ProductID     string            // Catalog product this purchase is for
	UserID        string            // Owning user, or the anonymous sentinel
	Amount        float64           // Amount in display currency units
	Currency      string            // ISO-4217-like currency code (USD, COP)
	Status        TransactionStatus // Canonical payment status
	Reference     string            // Provider-assigned transaction identifier
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsValidStatus reports whether s is one of the canonical statuses
func IsValidStatus(s string) bool {
	switch TransactionStatus(s) {
	case StatusPaid, StatusPending, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// Validate checks the invariants a normalized transaction must satisfy
// before it can be handed to the store
func (t *Transaction) Validate() error {
	if t.OrderID == "" {
		return errs.ErrMissingOrderID
	}
	if !IsValidStatus(string(t.Status)) {
		return fmt.Errorf("%w: %s", errs.ErrInvalidStatus, t.Status)
	}
	if t.Amount < 0 {
		return errs.ErrNegativeAmount
	}
	return nil
}

// IsAnonymous reports whether the transaction has no resolvable owner
func (t *Transaction) IsAnonymous() bool {
	return t.UserID == "" || t.UserID == AnonymousUserID
}

// IsPaid reports whether the transaction has reached the paid state
func (t *Transaction) IsPaid() bool {
	return t.Status == StatusPaid
}
