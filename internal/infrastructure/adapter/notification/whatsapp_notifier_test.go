package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/easybots/storefront-backend/internal/domain/entity"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/logger"
)

func paidTransaction() *entity.Transaction {
	return &entity.Transaction{
		OrderID:       "easybots-botpress-expert-1768478400000",
		ProductID:     "botpress-expert",
		UserID:        "user-42",
		Amount:        149,
		Currency:      "USD",
		Status:        entity.StatusPaid,
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
	}
}

func TestWhatsAppNotifier_Notify(t *testing.T) {
	ctx := context.Background()

	t.Run("should post the purchase alert to the gateway", func(t *testing.T) {
		var received gatewayMessage
		var gotAuth string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		notifier := NewWhatsAppNotifier(Config{
			GatewayURL: server.URL,
			AuthToken:  "token-1",
			AdminPhone: "+573001112233",
		}, logger.NewNoopLogger())

		result, err := notifier.Notify(ctx, paidTransaction())

		assert.NoError(t, err)
		assert.True(t, result.Sent)
		assert.Equal(t, "Bearer token-1", gotAuth)
		assert.Equal(t, "+573001112233", received.Phone)
		assert.Contains(t, received.Message, "botpress-expert")
		assert.Contains(t, received.Message, "149.00 USD")
	})

	t.Run("should degrade to log-only when no gateway is configured", func(t *testing.T) {
		notifier := NewWhatsAppNotifier(Config{}, logger.NewNoopLogger())

		result, err := notifier.Notify(ctx, paidTransaction())

		assert.NoError(t, err)
		assert.False(t, result.Sent)
	})

	t.Run("should report gateway rejections as errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		}))
		defer server.Close()

		notifier := NewWhatsAppNotifier(Config{GatewayURL: server.URL}, logger.NewNoopLogger())

		result, err := notifier.Notify(ctx, paidTransaction())

		assert.Error(t, err)
		assert.False(t, result.Sent)
	})
}
