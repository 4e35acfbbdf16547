package persistence

import (
	"context"

	"github.com/easybots/storefront-backend/internal/domain/entity"
)

// TransactionStore is the idempotent, per-owner keyed persistence layer for
// transactions. Records are scoped under their owning user; the order ID is
// the business key used to correlate webhook events back to a record.
type TransactionStore interface {
	// Create persists a new transaction under its owning user, stamping a
	// generated document ID and creation/update timestamps. The store is
	// append-only on create: it performs no dedup by order ID.
	// Anonymous transactions are skipped with a logged warning, not an error.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// UpdateStatus locates an existing transaction by order ID and overwrites
	// only its status and update timestamp. When the owning user is known the
	// lookup is scoped to that user; otherwise, or on a miss, the store falls
	// back to a cross-user search. A missing record is a logged no-op, never
	// an error, because providers retry webhook delivery.
	UpdateStatus(ctx context.Context, orderID string, status entity.TransactionStatus, userID string) error

	// ListByUser returns all transactions owned by the given user, newest
	// first
	ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error)
}
