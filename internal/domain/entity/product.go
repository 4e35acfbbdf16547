package entity

import (
	"strings"
	"time"

	errs "github.com/easybots/storefront-backend/internal/domain/error"
)

// Supported checkout currencies
const (
	CurrencyUSD = "USD"
	CurrencyCOP = "COP"
)

// Product represents one catalog entry offered at checkout
type Product struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	PriceUSD    float64 // Price in US dollars, display units
	PriceCOP    float64 // Price in Colombian pesos, display units
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Price returns the product price for the given currency code
func (p *Product) Price(currency string) (float64, error) {
	switch strings.ToUpper(currency) {
	case CurrencyUSD:
		return p.PriceUSD, nil
	case CurrencyCOP:
		return p.PriceCOP, nil
	default:
		return 0, errs.ErrUnsupportedCurrency
	}
}

// PriceInCents returns the product price in minor units, as payment
// providers expect it at payment-link creation time
func (p *Product) PriceInCents(currency string) (int64, error) {
	price, err := p.Price(currency)
	if err != nil {
		return 0, err
	}
	return int64(price*100 + 0.5), nil
}
