package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	errs "github.com/easybots/storefront-backend/internal/domain/error"
	coreport "github.com/easybots/storefront-backend/internal/domain/port/core"
	paymentport "github.com/easybots/storefront-backend/internal/domain/port/payment"
)

const defaultRequestTimeout = 15 * time.Second

// BoldConfig holds the Bold API connection settings
type BoldConfig struct {
	APIURL string
	APIKey string
}

// BoldClient creates hosted payment links through the Bold API
type BoldClient struct {
	config     BoldConfig
	httpClient *http.Client
	logger     coreport.Logger
}

// NewBoldClient creates a new BoldClient instance
func NewBoldClient(config BoldConfig, logger coreport.Logger) *BoldClient {
	return &BoldClient{
		config: config,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
		logger: logger,
	}
}

type boldLinkRequest struct {
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	OrderID        string            `json:"orderId"`
	Description    string            `json:"description,omitempty"`
	RedirectURL    string            `json:"redirectUrl,omitempty"`
	PaymentMethods boldPaymentConfig `json:"paymentMethods"`
	Customer       *boldCustomer     `json:"customer,omitempty"`
}

type boldPaymentConfig struct {
	Metadata map[string]string `json:"metadata"`
}

type boldCustomer struct {
	Email       string `json:"email,omitempty"`
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type boldLinkResponse struct {
	Data struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	} `json:"data"`
}

// CreateLink requests a hosted payment link for the given order. Transaction
// ownership travels in the link metadata so it comes back on the webhook.
func (c *BoldClient) CreateLink(ctx context.Context, request paymentport.LinkRequest) (string, error) {
	if c.config.APIKey == "" {
		return "", fmt.Errorf("%w: bold api key is not configured", errs.ErrPaymentProvider)
	}

	body := boldLinkRequest{
		Amount:      request.AmountInCents,
		Currency:    request.Currency,
		OrderID:     request.OrderID,
		Description: request.Description,
		RedirectURL: request.RedirectURL,
		PaymentMethods: boldPaymentConfig{
			Metadata: map[string]string{
				"productId": request.ProductID,
				"userId":    request.UserID,
			},
		},
	}
	if request.CustomerEmail != "" || request.CustomerName != "" || request.CustomerPhone != "" {
		body.Customer = &boldCustomer{
			Email:       request.CustomerEmail,
			Name:        request.CustomerName,
			PhoneNumber: request.CustomerPhone,
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrPaymentProvider, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.APIURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrPaymentProvider, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "x-api-key "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Bold payment link request failed", map[string]any{
			"order_id": request.OrderID,
			"error":    err.Error(),
		})
		return "", fmt.Errorf("%w: %s", errs.ErrPaymentProvider, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Error("Bold API rejected payment link request", map[string]any{
			"order_id": request.OrderID,
			"status":   resp.StatusCode,
			"response": string(detail),
		})
		return "", fmt.Errorf("%w: bold api returned status %d", errs.ErrPaymentProvider, resp.StatusCode)
	}

	var linkResponse boldLinkResponse
	if err := json.NewDecoder(resp.Body).Decode(&linkResponse); err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrPaymentProvider, err.Error())
	}
	if linkResponse.Data.URL == "" {
		return "", fmt.Errorf("%w: bold api response missing payment link url", errs.ErrPaymentProvider)
	}

	c.logger.Info("Bold payment link created", map[string]any{
		"order_id": request.OrderID,
		"link_id":  linkResponse.Data.ID,
	})
	return linkResponse.Data.URL, nil
}
