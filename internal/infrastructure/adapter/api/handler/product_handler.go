package handler

import (
	"net/http"

	domainerr "github.com/easybots/storefront-backend/internal/domain/error"
	coreport "github.com/easybots/storefront-backend/internal/domain/port/core"
	"github.com/easybots/storefront-backend/internal/domain/port/persistence"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	products persistence.ProductRepository
	logger   coreport.Logger
}

// NewProductHandler creates a new product handler instance
func NewProductHandler(products persistence.ProductRepository, logger coreport.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		logger:   logger,
	}
}

// ListProducts handles the GET /api/products endpoint
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list products", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			Message: "Internal server error",
		})
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, dto.NewProductResponse(product))
	}
	c.JSON(http.StatusOK, response)
}

// GetProduct handles the GET /api/products/:productId endpoint
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID := c.Param("productId")

	product, err := h.products.GetByID(c.Request.Context(), productID)
	if err != nil {
		c.JSON(domainerr.HTTPStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}
