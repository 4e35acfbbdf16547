package dto

// WebhookResponse acknowledges a processed webhook delivery
type WebhookResponse struct {
	Success bool `json:"success"`
}
