package routes

import (
	"net/http"

	coreport "github.com/easybots/storefront-backend/internal/domain/port/core"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/api/handler"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/api/middleware"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	webhookHandler *handler.WebhookHandler,
	checkoutHandler *handler.CheckoutHandler,
	productHandler *handler.ProductHandler,
	transactionHandler *handler.TransactionHandler,
) {
	// Provider webhook endpoints
	webhooks := router.Group("/webhooks")
	{
		// POST /webhooks/bold
		webhooks.POST("/bold", webhookHandler.HandleBold)

		// POST /webhooks/epayco
		webhooks.POST("/epayco", webhookHandler.HandleEpayco)
	}

	// Storefront API
	api := router.Group("/api")
	{
		// POST /api/checkout/payment-link
		api.POST("/checkout/payment-link", checkoutHandler.CreatePaymentLink)

		// POST /api/checkout/epayco
		api.POST("/checkout/epayco", checkoutHandler.EpaycoCheckout)

		// GET /api/products
		api.GET("/products", productHandler.ListProducts)

		// GET /api/products/:productId
		api.GET("/products/:productId", productHandler.GetProduct)

		// GET /api/users/:userId/transactions
		api.GET("/users/:userId/transactions", transactionHandler.ListUserTransactions)
	}

	// Operational endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
