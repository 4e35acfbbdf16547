package notification

import (
	"context"

	"github.com/easybots/storefront-backend/internal/domain/entity"
)

// Result reports the outcome of a notification attempt
type Result struct {
	Sent    bool   // Whether the notification reached the admin channel
	Message string // The human-readable message that was composed
}

// Notifier is the outbound notification collaborator. Given a reconciled
// transaction it composes and sends a human-readable admin notification.
// Failures must never fail the webhook that triggered them.
type Notifier interface {
	Notify(ctx context.Context, transaction *entity.Transaction) (Result, error)
}
