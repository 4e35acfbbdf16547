package dto

import "github.com/easybots/storefront-backend/internal/domain/entity"

// ProductResponse represents one catalog product in API responses
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	PriceUSD    float64 `json:"priceUsd"`
	PriceCOP    float64 `json:"priceCop"`
}

// NewProductResponse maps a product entity to its API representation
func NewProductResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		PriceUSD:    product.PriceUSD,
		PriceCOP:    product.PriceCOP,
	}
}
