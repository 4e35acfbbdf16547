package dto

import (
	"time"

	"github.com/easybots/storefront-backend/internal/domain/entity"
)

// TransactionResponse represents one persisted transaction in API responses
type TransactionResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	ProductID string    `json:"productId"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewTransactionResponse maps a transaction entity to its API representation
func NewTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        transaction.ID,
		OrderID:   transaction.OrderID,
		ProductID: transaction.ProductID,
		Amount:    transaction.Amount,
		Currency:  transaction.Currency,
		Status:    string(transaction.Status),
		Reference: transaction.Reference,
		CreatedAt: transaction.CreatedAt,
		UpdatedAt: transaction.UpdatedAt,
	}
}
