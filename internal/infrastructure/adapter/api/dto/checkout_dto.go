package dto

// CheckoutRequest carries one checkout attempt for a catalog product
type CheckoutRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Currency  string `json:"currency" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
	UserPhone string `json:"userPhone"`
}

// PaymentLinkResponse returns the hosted checkout URL for an order
type PaymentLinkResponse struct {
	PaymentURL string `json:"paymentUrl"`
}
