package payment

import "context"

// LinkRequest describes one hosted payment link to create. The product and
// user identifiers travel as metadata so the provider echoes them back in
// webhook events.
type LinkRequest struct {
	OrderID       string
	AmountInCents int64
	Currency      string
	Description   string
	RedirectURL   string
	ProductID     string
	UserID        string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// LinkProvider creates hosted payment links with an external payment
// processor
type LinkProvider interface {
	// CreateLink creates a payment link and returns its checkout URL
	CreateLink(ctx context.Context, req LinkRequest) (string, error)
}
