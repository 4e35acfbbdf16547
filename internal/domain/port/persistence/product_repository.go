package persistence

import (
	"context"

	"github.com/easybots/storefront-backend/internal/domain/entity"
)

// ProductRepository provides read access to the product catalog
type ProductRepository interface {
	// GetByID returns the product with the given catalog ID, or
	// ErrProductNotFound
	GetByID(ctx context.Context, id string) (*entity.Product, error)

	// List returns all catalog products
	List(ctx context.Context) ([]*entity.Product, error)
}
