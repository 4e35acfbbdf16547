package webhook

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/easybots/storefront-backend/internal/domain/entity"
	errs "github.com/easybots/storefront-backend/internal/domain/error"
	notifport "github.com/easybots/storefront-backend/internal/domain/port/notification"
	coreMocks "github.com/easybots/storefront-backend/mocks/port/core"
	notificationMocks "github.com/easybots/storefront-backend/mocks/port/notification"
	persistenceMocks "github.com/easybots/storefront-backend/mocks/port/persistence"
)

// newTestReconciler wires a reconciler with permissive logging expectations
func newTestReconciler() (*Reconciler, *persistenceMocks.MockTransactionStore, *notificationMocks.MockNotifier) {
	mockStore := new(persistenceMocks.MockTransactionStore)
	mockNotifier := new(notificationMocks.MockNotifier)

	mockLogger := new(coreMocks.MockLogger)
	mockLogger.On("Debug", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Info", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Warn", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Error", mock.Anything, mock.Anything).Return().Maybe()

	return NewReconciler(mockStore, mockNotifier, mockLogger), mockStore, mockNotifier
}

func boldBody(event, reference, status, userID string) []byte {
	return []byte(`{
		"event": "` + event + `",
		"data": {
			"id": "evt-1",
			"reference": "` + reference + `",
			"amount_in_cents": 14900,
			"currency": "USD",
			"status": "` + status + `",
			"payment_method": {"metadata": {"productId": "botpress-expert", "userId": "` + userID + `"}}
		}
	}`)
}

func TestReconciler_HandleBoldEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("should persist and notify for a paid created event", func(t *testing.T) {
		reconciler, mockStore, mockNotifier := newTestReconciler()

		mockStore.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		mockNotifier.On("Notify", ctx, mock.AnythingOfType("*entity.Transaction")).
			Return(notifport.Result{Sent: true, Message: "notification sent"}, nil)

		err := reconciler.HandleBoldEvent(ctx, boldBody("transaction.created", "order-1", "PAID", "user-42"))

		assert.NoError(t, err)
		mockStore.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)

		// Persistence must complete before notification fires
		created := mockStore.Calls[0].Arguments.Get(1).(*entity.Transaction)
		assert.Equal(t, "order-1", created.OrderID)
		assert.Equal(t, entity.StatusPaid, created.Status)
	})

	t.Run("should persist without notifying for a pending created event", func(t *testing.T) {
		reconciler, mockStore, mockNotifier := newTestReconciler()

		mockStore.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)

		err := reconciler.HandleBoldEvent(ctx, boldBody("transaction.created", "order-2", "PENDING", "user-42"))

		assert.NoError(t, err)
		mockStore.AssertExpectations(t)
		mockNotifier.AssertNotCalled(t, "Notify")
	})

	t.Run("should skip persistence for anonymous created events", func(t *testing.T) {
		reconciler, mockStore, mockNotifier := newTestReconciler()

		mockNotifier.On("Notify", ctx, mock.AnythingOfType("*entity.Transaction")).
			Return(notifport.Result{Sent: true}, nil)

		err := reconciler.HandleBoldEvent(ctx, boldBody("transaction.created", "order-3", "PAID", ""))

		assert.NoError(t, err)
		mockStore.AssertNotCalled(t, "Create")
	})

	t.Run("should propagate storage failures on the create path", func(t *testing.T) {
		reconciler, mockStore, mockNotifier := newTestReconciler()

		storeErr := errors.New("connection refused")
		mockStore.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).Return(storeErr)

		err := reconciler.HandleBoldEvent(ctx, boldBody("transaction.created", "order-4", "PAID", "user-42"))

		assert.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
		mockNotifier.AssertNotCalled(t, "Notify")

		var webhookErr *errs.WebhookError
		assert.ErrorAs(t, err, &webhookErr)
		assert.Equal(t, ProviderBold, webhookErr.Provider)
		assert.Equal(t, "order-4", webhookErr.OrderID)
	})

	t.Run("should route updated events to a status update", func(t *testing.T) {
		reconciler, mockStore, mockNotifier := newTestReconciler()

		mockStore.On("UpdateStatus", ctx, "order-5", entity.StatusCancelled, "user-42").Return(nil)

		err := reconciler.HandleBoldEvent(ctx, boldBody("transaction.updated", "order-5", "VOIDED", "user-42"))

		assert.NoError(t, err)
		mockStore.AssertExpectations(t)
		mockStore.AssertNotCalled(t, "Create")
		mockNotifier.AssertNotCalled(t, "Notify")
	})

	t.Run("should notify when an updated event reports paid", func(t *testing.T) {
		reconciler, mockStore, mockNotifier := newTestReconciler()

		mockStore.On("UpdateStatus", ctx, "order-6", entity.StatusPaid, "user-42").Return(nil)
		mockNotifier.On("Notify", ctx, mock.AnythingOfType("*entity.Transaction")).
			Return(notifport.Result{Sent: true}, nil)

		err := reconciler.HandleBoldEvent(ctx, boldBody("transaction.updated", "order-6", "PAID", "user-42"))

		assert.NoError(t, err)
		mockStore.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("should skip updates for anonymous owners", func(t *testing.T) {
		reconciler, mockStore, mockNotifier := newTestReconciler()

		err := reconciler.HandleBoldEvent(ctx, boldBody("transaction.updated", "order-5", "VOIDED", "anonymous"))

		assert.NoError(t, err)
		mockStore.AssertNotCalled(t, "UpdateStatus")
		mockNotifier.AssertNotCalled(t, "Notify")
	})

	t.Run("should swallow storage failures on the update path", func(t *testing.T) {
		reconciler, mockStore, _ := newTestReconciler()

		mockStore.On("UpdateStatus", ctx, "order-7", entity.StatusCancelled, "user-42").
			Return(errors.New("connection refused"))

		err := reconciler.HandleBoldEvent(ctx, boldBody("transaction.updated", "order-7", "CANCELLED", "user-42"))

		assert.NoError(t, err)
	})

	t.Run("should ignore unrecognized event types", func(t *testing.T) {
		reconciler, mockStore, mockNotifier := newTestReconciler()

		err := reconciler.HandleBoldEvent(ctx, boldBody("transaction.settled", "order-8", "PAID", "user-42"))

		assert.NoError(t, err)
		mockStore.AssertNotCalled(t, "Create")
		mockStore.AssertNotCalled(t, "UpdateStatus")
		mockNotifier.AssertNotCalled(t, "Notify")
	})

	t.Run("should swallow notification failures after persistence", func(t *testing.T) {
		reconciler, mockStore, mockNotifier := newTestReconciler()

		mockStore.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		mockNotifier.On("Notify", ctx, mock.AnythingOfType("*entity.Transaction")).
			Return(notifport.Result{}, errors.New("gateway timeout"))

		err := reconciler.HandleBoldEvent(ctx, boldBody("transaction.created", "order-9", "PAID", "user-42"))

		assert.NoError(t, err)
		mockStore.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("should return error for malformed payloads", func(t *testing.T) {
		reconciler, mockStore, _ := newTestReconciler()

		err := reconciler.HandleBoldEvent(ctx, []byte(`not json`))

		assert.ErrorIs(t, err, errs.ErrInvalidPayload)
		mockStore.AssertNotCalled(t, "Create")
	})
}

func TestReconciler_HandleEpaycoEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("should persist and notify for an approved confirmation", func(t *testing.T) {
		reconciler, mockStore, mockNotifier := newTestReconciler()

		mockStore.On("Create", ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		mockNotifier.On("Notify", ctx, mock.AnythingOfType("*entity.Transaction")).
			Return(notifport.Result{Sent: true}, nil)

		err := reconciler.HandleEpaycoEvent(ctx, epaycoForm())

		assert.NoError(t, err)
		mockStore.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("should route non-approved confirmations to update only", func(t *testing.T) {
		reconciler, mockStore, mockNotifier := newTestReconciler()

		form := epaycoForm()
		form.Set("x_cod_response", "3")
		form.Set("x_cod_transaction_state", "3")

		mockStore.On("UpdateStatus", ctx,
			"easybots-botpress-expert-1700000000000", entity.StatusPending, "user-42").Return(nil)

		err := reconciler.HandleEpaycoEvent(ctx, form)

		assert.NoError(t, err)
		mockStore.AssertExpectations(t)
		mockStore.AssertNotCalled(t, "Create")
		mockNotifier.AssertNotCalled(t, "Notify")
	})

	t.Run("should return error when extras are missing", func(t *testing.T) {
		reconciler, mockStore, _ := newTestReconciler()

		form := epaycoForm()
		form.Del("x_extra2")

		err := reconciler.HandleEpaycoEvent(ctx, form)

		assert.ErrorIs(t, err, errs.ErrMissingExtras)
		mockStore.AssertNotCalled(t, "Create")
		mockStore.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("should route anonymous updates through the store", func(t *testing.T) {
		reconciler, mockStore, _ := newTestReconciler()

		form := epaycoForm()
		form.Set("x_cod_response", "2")
		form.Set("x_cod_transaction_state", "4")
		form.Set("x_extra2", entity.AnonymousUserID)

		mockStore.On("UpdateStatus", ctx,
			"easybots-botpress-expert-1700000000000", entity.StatusFailed, entity.AnonymousUserID).Return(nil)

		err := reconciler.HandleEpaycoEvent(ctx, form)

		assert.NoError(t, err)
		mockStore.AssertExpectations(t)
		mockStore.AssertNotCalled(t, "Create")
	})
}
