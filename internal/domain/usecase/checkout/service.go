package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/easybots/storefront-backend/internal/domain/entity"
	errs "github.com/easybots/storefront-backend/internal/domain/error"
	coreport "github.com/easybots/storefront-backend/internal/domain/port/core"
	"github.com/easybots/storefront-backend/internal/domain/port/payment"
	"github.com/easybots/storefront-backend/internal/domain/port/persistence"
)

// Options carries the storefront-level checkout settings
type Options struct {
	// OrderPrefix namespaces minted order IDs, e.g. "easybots"
	OrderPrefix string
	// RedirectURL is where the provider sends the customer after payment
	RedirectURL string
	// ConfirmationURL is the webhook endpoint ePayco posts confirmations to
	ConfirmationURL string
	// EpaycoPublicKey identifies the merchant to the embedded checkout widget
	EpaycoPublicKey string
}

// Request describes one checkout attempt for a catalog product
type Request struct {
	ProductID string
	Currency  string
	UserID    string
	UserEmail string
	UserName  string
	UserPhone string
}

// EpaycoCheckout is the configuration the embedded ePayco widget needs.
// The extras round-trip the business key and owner through the provider so
// its webhook can be reconciled later.
type EpaycoCheckout struct {
	Key          string  `json:"key"`
	Invoice      string  `json:"invoice"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	Response     string  `json:"response"`
	Confirmation string  `json:"confirmation"`
	Extra1       string  `json:"extra1"` // order ID
	Extra2       string  `json:"extra2"` // user ID
	Extra3       string  `json:"extra3"` // product ID
}

// Service mints order IDs and prepares provider-specific checkout flows
type Service struct {
	products     persistence.ProductRepository
	links        payment.LinkProvider
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	opts         Options
}

// NewService creates a new checkout service
func NewService(
	products persistence.ProductRepository,
	links payment.LinkProvider,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts Options,
) *Service {
	return &Service{
		products:     products,
		links:        links,
		timeProvider: timeProvider,
		logger:       logger,
		opts:         opts,
	}
}

// mintOrderID generates the provider-agnostic business key for one checkout
// attempt: <prefix>-<productId>-<unix-millis>. It is never reused across
// retries of the same checkout.
func (s *Service) mintOrderID(productID string) string {
	return fmt.Sprintf("%s-%s-%d", s.opts.OrderPrefix, productID, s.timeProvider.Now().UnixMilli())
}

// resolve validates the request and loads the product it refers to
func (s *Service) resolve(ctx context.Context, req Request) (*entity.Product, error) {
	if req.ProductID == "" || req.Currency == "" || req.UserID == "" {
		return nil, fmt.Errorf("%w: productId, currency and userId are required", errs.ErrInvalidRequest)
	}
	return s.products.GetByID(ctx, req.ProductID)
}

// CreatePaymentLink creates a hosted payment link for the requested product
// and returns its checkout URL. The order ID and owning user travel as
// payment-method metadata so the provider's webhook events carry them back.
func (s *Service) CreatePaymentLink(ctx context.Context, req Request) (string, error) {
	product, err := s.resolve(ctx, req)
	if err != nil {
		return "", err
	}

	amountInCents, err := product.PriceInCents(req.Currency)
	if err != nil {
		return "", err
	}

	orderID := s.mintOrderID(product.ID)
	linkURL, err := s.links.CreateLink(ctx, payment.LinkRequest{
		OrderID:       orderID,
		AmountInCents: amountInCents,
		Currency:      strings.ToUpper(req.Currency),
		Description:   "Payment for " + product.Name,
		RedirectURL:   s.opts.RedirectURL,
		ProductID:     product.ID,
		UserID:        req.UserID,
		CustomerName:  req.UserName,
		CustomerEmail: req.UserEmail,
		CustomerPhone: req.UserPhone,
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("Payment link created", map[string]any{
		"order_id":   orderID,
		"product_id": product.ID,
		"currency":   req.Currency,
	})
	return linkURL, nil
}

// EpaycoCheckout prepares the embedded checkout widget configuration for the
// requested product, echoing the order ID, user ID and product ID through
// the extra1..3 passthrough fields.
func (s *Service) EpaycoCheckout(ctx context.Context, req Request) (*EpaycoCheckout, error) {
	product, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	amount, err := product.Price(req.Currency)
	if err != nil {
		return nil, err
	}

	orderID := s.mintOrderID(product.ID)
	checkout := &EpaycoCheckout{
		Key:          s.opts.EpaycoPublicKey,
		Invoice:      orderID,
		Name:         product.Name,
		Description:  product.Description,
		Amount:       amount,
		Currency:     strings.ToLower(req.Currency),
		Response:     s.opts.RedirectURL,
		Confirmation: s.opts.ConfirmationURL,
		Extra1:       orderID,
		Extra2:       req.UserID,
		Extra3:       product.ID,
	}

	s.logger.Info("ePayco checkout prepared", map[string]any{
		"order_id":   orderID,
		"product_id": product.ID,
		"currency":   req.Currency,
	})
	return checkout, nil
}
