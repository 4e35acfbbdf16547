package repository

import (
	"context"

	"github.com/easybots/storefront-backend/internal/domain/entity"
	coreport "github.com/easybots/storefront-backend/internal/domain/port/core"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/database"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ProductRepository implements the product repository interface using GORM
type ProductRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

// NewProductRepository creates a new ProductRepository instance
func NewProductRepository(db *gorm.DB, logger coreport.Logger) *ProductRepository {
	return &ProductRepository{
		db:          db,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
	}
}

func (r *ProductRepository) entityToModel(product *entity.Product) model.Product {
	return model.Product{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		PriceUSD:    product.PriceUSD,
		PriceCOP:    product.PriceCOP,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func (r *ProductRepository) modelToEntity(m *model.Product) *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		PriceUSD:    m.PriceUSD,
		PriceCOP:    m.PriceCOP,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// GetByID retrieves a product by its identifier
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var productModel model.Product
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&productModel)
	if result.Error != nil {
		return nil, r.errorMapper.MapEntityNotFoundError(result.Error, database.EntityTypeProduct)
	}
	return r.modelToEntity(&productModel), nil
}

// List returns the full product catalog
func (r *ProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var models []model.Product
	result := r.db.WithContext(ctx).Order("id asc").Find(&models)
	if result.Error != nil {
		return nil, r.errorMapper.MapError(result.Error, "list products")
	}

	products := make([]*entity.Product, 0, len(models))
	for i := range models {
		products = append(products, r.modelToEntity(&models[i]))
	}
	return products, nil
}

// Create persists a new product
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	productModel := r.entityToModel(product)
	result := r.db.WithContext(ctx).Create(&productModel)
	if result.Error != nil {
		r.logger.Error("Failed to create product", map[string]any{
			"product_id": product.ID,
			"error":      result.Error.Error(),
		})
		return r.errorMapper.MapError(result.Error, "create product")
	}
	return nil
}
