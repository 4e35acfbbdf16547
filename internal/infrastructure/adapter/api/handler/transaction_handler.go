package handler

import (
	"net/http"

	domainerr "github.com/easybots/storefront-backend/internal/domain/error"
	coreport "github.com/easybots/storefront-backend/internal/domain/port/core"
	"github.com/easybots/storefront-backend/internal/domain/port/persistence"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction history HTTP requests
type TransactionHandler struct {
	store  persistence.TransactionStore
	logger coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(store persistence.TransactionStore, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		store:  store,
		logger: logger,
	}
}

// ListUserTransactions handles the GET /api/users/:userId/transactions endpoint
func (h *TransactionHandler) ListUserTransactions(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Missing user ID",
		})
		return
	}

	transactions, err := h.store.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list user transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			Message: "Internal server error",
		})
		return
	}

	response := make([]dto.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		response = append(response, dto.NewTransactionResponse(transaction))
	}
	c.JSON(http.StatusOK, response)
}
