package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/easybots/storefront-backend/internal/domain/error"
)

func TestProduct_Price(t *testing.T) {
	product := &Product{ID: "botpress-expert", PriceUSD: 149, PriceCOP: 596000}

	t.Run("should resolve USD price", func(t *testing.T) {
		price, err := product.Price("USD")
		assert.NoError(t, err)
		assert.Equal(t, 149.0, price)
	})

	t.Run("should resolve COP price case-insensitively", func(t *testing.T) {
		price, err := product.Price("cop")
		assert.NoError(t, err)
		assert.Equal(t, 596000.0, price)
	})

	t.Run("should reject unsupported currencies", func(t *testing.T) {
		_, err := product.Price("EUR")
		assert.ErrorIs(t, err, errs.ErrUnsupportedCurrency)
	})
}

func TestProduct_PriceInCents(t *testing.T) {
	product := &Product{ID: "voiceflow-assistant", PriceUSD: 129.99, PriceCOP: 516000}

	cents, err := product.PriceInCents("USD")
	assert.NoError(t, err)
	assert.Equal(t, int64(12999), cents)

	cents, err = product.PriceInCents("COP")
	assert.NoError(t, err)
	assert.Equal(t, int64(51600000), cents)

	_, err = product.PriceInCents("GBP")
	assert.ErrorIs(t, err, errs.ErrUnsupportedCurrency)
}
