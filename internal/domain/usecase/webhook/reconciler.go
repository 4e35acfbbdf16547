package webhook

import (
	"context"
	"net/url"

	"github.com/easybots/storefront-backend/internal/domain/entity"
	errs "github.com/easybots/storefront-backend/internal/domain/error"
	coreport "github.com/easybots/storefront-backend/internal/domain/port/core"
	"github.com/easybots/storefront-backend/internal/domain/port/notification"
	"github.com/easybots/storefront-backend/internal/domain/port/persistence"
)

// Provider identifiers used in logs and error context
const (
	ProviderBold   = "bold"
	ProviderEpayco = "epayco"
)

// Reconciler routes verified, normalized webhook events to the transaction
// store and triggers the notification collaborator on paid transitions.
// Persistence always completes (or is skipped for anonymous owners) before a
// notification is attempted, and a notification failure never rolls back or
// fails the already-committed persistence.
type Reconciler struct {
	store    persistence.TransactionStore
	notifier notification.Notifier
	logger   coreport.Logger
}

// NewReconciler creates a new webhook reconciler
func NewReconciler(
	store persistence.TransactionStore,
	notifier notification.Notifier,
	logger coreport.Logger,
) *Reconciler {
	return &Reconciler{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// HandleBoldEvent processes a signature-verified Bold webhook body.
// Created-class events persist a new record, updated-class events overwrite
// the status of an existing one, unrecognized event types are a logged
// no-op so the provider stops redelivering them.
func (r *Reconciler) HandleBoldEvent(ctx context.Context, rawBody []byte) error {
	event, err := ParseBoldEvent(rawBody)
	if err != nil {
		return err
	}

	switch {
	case event.IsCreated():
		transaction := event.Transaction()
		r.logger.Info("Processing new transaction", map[string]any{
			"provider": ProviderBold,
			"order_id": transaction.OrderID,
			"data_id":  event.Data.ID,
		})
		if err := r.createTransaction(ctx, ProviderBold, transaction); err != nil {
			return err
		}
		r.notifyIfPaid(ctx, ProviderBold, transaction)
		return nil

	case event.IsUpdated():
		transaction := event.Transaction()
		r.logger.Info("Processing transaction update", map[string]any{
			"provider": ProviderBold,
			"order_id": transaction.OrderID,
			"data_id":  event.Data.ID,
		})
		// Bold events carry no reliable owner on anonymous checkouts, so an
		// anonymous update has nothing to target and is dropped here. ePayco
		// confirmations instead go through the store, whose cross-user
		// fallback can still locate the record.
		if transaction.IsAnonymous() {
			r.logger.Info("Skipping transaction update for anonymous user", map[string]any{
				"provider": ProviderBold,
				"order_id": transaction.OrderID,
			})
		} else {
			r.updateTransaction(ctx, ProviderBold, transaction)
		}
		r.notifyIfPaid(ctx, ProviderBold, transaction)
		return nil

	default:
		r.logger.Info("Ignoring unhandled webhook event type", map[string]any{
			"provider":   ProviderBold,
			"event_type": event.Event,
		})
		return nil
	}
}

// HandleEpaycoEvent processes a signature-verified ePayco confirmation form.
// Only approved transactions (response code 1) take the create path; every
// other response code routes to update-only with the mapped status.
func (r *Reconciler) HandleEpaycoEvent(ctx context.Context, form url.Values) error {
	event, err := ParseEpaycoEvent(form)
	if err != nil {
		return err
	}

	transaction := event.Transaction()

	if event.Approved() {
		r.logger.Info("Processing approved transaction", map[string]any{
			"provider":  ProviderEpayco,
			"order_id":  transaction.OrderID,
			"reference": transaction.Reference,
		})
		if err := r.createTransaction(ctx, ProviderEpayco, transaction); err != nil {
			return err
		}
		r.notifyIfPaid(ctx, ProviderEpayco, transaction)
		return nil
	}

	r.logger.Info("Processing non-approved transaction state", map[string]any{
		"provider":      ProviderEpayco,
		"order_id":      transaction.OrderID,
		"response_code": event.ResponseCode,
		"status":        transaction.Status,
	})
	r.updateTransaction(ctx, ProviderEpayco, transaction)
	return nil
}

// createTransaction persists a new transaction. Anonymous owners are dropped
// with a logged skip; storage failures propagate so the provider retries the
// delivery.
func (r *Reconciler) createTransaction(ctx context.Context, provider string, transaction *entity.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return errs.NewWebhookError(provider, transaction.OrderID, transaction.Reference,
			"normalized transaction failed validation", err)
	}

	if transaction.IsAnonymous() {
		r.logger.Info("Skipping transaction save for anonymous user", map[string]any{
			"provider": provider,
			"order_id": transaction.OrderID,
		})
		return nil
	}

	if err := r.store.Create(ctx, transaction); err != nil {
		return errs.NewWebhookError(provider, transaction.OrderID, transaction.Reference,
			"failed to persist transaction", err)
	}
	return nil
}

// updateTransaction overwrites the status of an existing transaction.
// Misses and storage failures degrade to a log line: providers retry webhook
// delivery, and a retried update against a settled or never-created record
// must not cause repeated hard failures. Anonymous owners are passed through
// as-is; the store resolves them via its cross-user fallback lookup.
func (r *Reconciler) updateTransaction(ctx context.Context, provider string, transaction *entity.Transaction) {
	if err := r.store.UpdateStatus(ctx, transaction.OrderID, transaction.Status, transaction.UserID); err != nil {
		r.logger.Error("Failed to update transaction status", map[string]any{
			"provider": provider,
			"order_id": transaction.OrderID,
			"status":   transaction.Status,
			"error":    err.Error(),
		})
	}
}

// notifyIfPaid triggers the notification collaborator when the observed
// status is PAID. Notification is at-least-once: duplicate provider
// redeliveries of an already-paid transaction notify again. Failures are
// recorded and swallowed.
func (r *Reconciler) notifyIfPaid(ctx context.Context, provider string, transaction *entity.Transaction) {
	if !transaction.IsPaid() {
		return
	}

	result, err := r.notifier.Notify(ctx, transaction)
	if err != nil {
		r.logger.Error("Payment notification failed", map[string]any{
			"provider": provider,
			"order_id": transaction.OrderID,
			"error":    err.Error(),
		})
		return
	}

	r.logger.Info("Payment notification triggered", map[string]any{
		"provider": provider,
		"order_id": transaction.OrderID,
		"sent":     result.Sent,
	})
}
