package handler

import (
	"net/http"

	domainerr "github.com/easybots/storefront-backend/internal/domain/error"
	coreport "github.com/easybots/storefront-backend/internal/domain/port/core"
	checkoutUseCase "github.com/easybots/storefront-backend/internal/domain/usecase/checkout"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles checkout-related HTTP requests
type CheckoutHandler struct {
	checkoutService *checkoutUseCase.Service
	logger          coreport.Logger
}

// NewCheckoutHandler creates a new checkout handler instance
func NewCheckoutHandler(checkoutService *checkoutUseCase.Service, logger coreport.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		logger:          logger,
	}
}

func (h *CheckoutHandler) bindRequest(c *gin.Context) (checkoutUseCase.Request, bool) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid checkout request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return checkoutUseCase.Request{}, false
	}

	return checkoutUseCase.Request{
		ProductID: req.ProductID,
		Currency:  req.Currency,
		UserID:    req.UserID,
		UserEmail: req.UserEmail,
		UserName:  req.UserName,
		UserPhone: req.UserPhone,
	}, true
}

// CreatePaymentLink handles the POST /api/checkout/payment-link endpoint
func (h *CheckoutHandler) CreatePaymentLink(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	paymentURL, err := h.checkoutService.CreatePaymentLink(c.Request.Context(), req)
	if err != nil {
		c.JSON(domainerr.HTTPStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Failed to create payment link",
		})
		return
	}

	c.JSON(http.StatusOK, dto.PaymentLinkResponse{PaymentURL: paymentURL})
}

// EpaycoCheckout handles the POST /api/checkout/epayco endpoint
func (h *CheckoutHandler) EpaycoCheckout(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	checkout, err := h.checkoutService.EpaycoCheckout(c.Request.Context(), req)
	if err != nil {
		c.JSON(domainerr.HTTPStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Failed to prepare checkout",
		})
		return
	}

	c.JSON(http.StatusOK, checkout)
}
