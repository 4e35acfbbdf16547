package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/easybots/storefront-backend/internal/domain/entity"
	coreport "github.com/easybots/storefront-backend/internal/domain/port/core"
	notifport "github.com/easybots/storefront-backend/internal/domain/port/notification"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/metrics"
)

const defaultRequestTimeout = 10 * time.Second

// Config holds the WhatsApp gateway connection settings
type Config struct {
	GatewayURL string
	AuthToken  string
	AdminPhone string
}

// WhatsAppNotifier sends admin purchase alerts through an HTTP
// WhatsApp gateway. With no gateway configured it degrades to
// log-only mode instead of failing.
type WhatsAppNotifier struct {
	config     Config
	httpClient *http.Client
	logger     coreport.Logger
}

// NewWhatsAppNotifier creates a new WhatsAppNotifier instance
func NewWhatsAppNotifier(config Config, logger coreport.Logger) *WhatsAppNotifier {
	return &WhatsAppNotifier{
		config: config,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
		logger: logger,
	}
}

type gatewayMessage struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Notify sends a purchase alert for the given transaction. Failures are
// reported through the result and error; the caller decides whether they
// interrupt anything.
func (n *WhatsAppNotifier) Notify(ctx context.Context, transaction *entity.Transaction) (notifport.Result, error) {
	message := n.composeMessage(transaction)

	if n.config.GatewayURL == "" {
		n.logger.Info("Notification gateway not configured, logging purchase alert only", map[string]any{
			"order_id": transaction.OrderID,
			"message":  message,
		})
		metrics.RecordNotification("skipped")
		return notifport.Result{Sent: false, Message: "notification gateway not configured"}, nil
	}

	payload, err := json.Marshal(gatewayMessage{
		Phone:   n.config.AdminPhone,
		Message: message,
	})
	if err != nil {
		metrics.RecordNotification("failed")
		return notifport.Result{Sent: false, Message: "failed to encode notification"}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.config.GatewayURL, bytes.NewReader(payload))
	if err != nil {
		metrics.RecordNotification("failed")
		return notifport.Result{Sent: false, Message: "failed to build notification request"}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.config.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+n.config.AuthToken)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		metrics.RecordNotification("failed")
		return notifport.Result{Sent: false, Message: "notification request failed"}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		metrics.RecordNotification("failed")
		return notifport.Result{Sent: false, Message: "notification gateway rejected request"},
			fmt.Errorf("notification gateway returned status %d: %s", resp.StatusCode, string(body))
	}

	n.logger.Info("Purchase notification sent", map[string]any{
		"order_id": transaction.OrderID,
		"user_id":  transaction.UserID,
	})
	metrics.RecordNotification("sent")
	return notifport.Result{Sent: true, Message: "notification sent"}, nil
}

// composeMessage builds the admin-facing purchase alert text
func (n *WhatsAppNotifier) composeMessage(transaction *entity.Transaction) string {
	return fmt.Sprintf(
		"New purchase confirmed!\nProduct: %s\nOrder: %s\nAmount: %.2f %s\nCustomer: %s (%s)",
		transaction.ProductID,
		transaction.OrderID,
		transaction.Amount,
		transaction.Currency,
		transaction.CustomerName,
		transaction.CustomerEmail,
	)
}
