package handler

import (
	"net/http"

	domainerr "github.com/easybots/storefront-backend/internal/domain/error"
	coreport "github.com/easybots/storefront-backend/internal/domain/port/core"
	webhookUseCase "github.com/easybots/storefront-backend/internal/domain/usecase/webhook"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/api/dto"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// Signature headers and fields the providers deliver
const (
	boldSignatureHeader  = "X-Bold-Signature"
	epaycoSignatureField = "x_signature"
)

// WebhookHandler handles payment provider webhook deliveries
type WebhookHandler struct {
	reconciler  *webhookUseCase.Reconciler
	boldCreds   webhookUseCase.BoldCredentials
	epaycoCreds webhookUseCase.EpaycoCredentials
	logger      coreport.Logger
}

// NewWebhookHandler creates a new webhook handler instance
func NewWebhookHandler(
	reconciler *webhookUseCase.Reconciler,
	boldCreds webhookUseCase.BoldCredentials,
	epaycoCreds webhookUseCase.EpaycoCredentials,
	logger coreport.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		reconciler:  reconciler,
		boldCreds:   boldCreds,
		epaycoCreds: epaycoCreds,
		logger:      logger,
	}
}

// HandleBold handles the POST /webhooks/bold endpoint. The signature covers
// the raw request body, so the body is read before any parsing happens.
func (h *WebhookHandler) HandleBold(c *gin.Context) {
	if !h.boldCreds.Configured() {
		h.logger.Error("Bold webhook secret is not configured", nil)
		metrics.RecordWebhookEvent(webhookUseCase.ProviderBold, metrics.OutcomeFailed)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrWebhookSecretMissing),
			Message: "Webhook secret is not configured",
		})
		return
	}

	rawBody, err := c.GetRawData()
	if err != nil {
		h.logger.Error("Failed to read webhook body", map[string]any{
			"error": err.Error(),
		})
		metrics.RecordWebhookEvent(webhookUseCase.ProviderBold, metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidPayload),
			Message: "Unable to read request body",
		})
		return
	}

	signature := c.GetHeader(boldSignatureHeader)
	if err := webhookUseCase.VerifyBoldSignature(rawBody, signature, h.boldCreds); err != nil {
		h.logger.Warn("Rejected Bold webhook delivery", map[string]any{
			"error":     err.Error(),
			"client_ip": c.ClientIP(),
		})
		if domainerr.IsAuthenticationError(err) {
			metrics.RecordWebhookEvent(webhookUseCase.ProviderBold, metrics.OutcomeUnauthorized)
		} else {
			metrics.RecordWebhookEvent(webhookUseCase.ProviderBold, metrics.OutcomeRejected)
		}
		c.JSON(domainerr.HTTPStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Invalid webhook signature",
		})
		return
	}

	if err := h.reconciler.HandleBoldEvent(c.Request.Context(), rawBody); err != nil {
		status := domainerr.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			metrics.RecordWebhookEvent(webhookUseCase.ProviderBold, metrics.OutcomeFailed)
		} else {
			metrics.RecordWebhookEvent(webhookUseCase.ProviderBold, metrics.OutcomeRejected)
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Failed to process webhook event",
		})
		return
	}

	metrics.RecordWebhookEvent(webhookUseCase.ProviderBold, metrics.OutcomeProcessed)
	c.JSON(http.StatusOK, dto.WebhookResponse{Success: true})
}

// HandleEpayco handles the POST /webhooks/epayco endpoint. ePayco posts an
// urlencoded confirmation form and expects a plain-text acknowledgement.
func (h *WebhookHandler) HandleEpayco(c *gin.Context) {
	if !h.epaycoCreds.Configured() {
		h.logger.Error("ePayco credentials are not configured", nil)
		metrics.RecordWebhookEvent(webhookUseCase.ProviderEpayco, metrics.OutcomeFailed)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrWebhookSecretMissing),
			Message: "Provider credentials are not configured",
		})
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		metrics.RecordWebhookEvent(webhookUseCase.ProviderEpayco, metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidPayload),
			Message: "Unable to parse confirmation form",
		})
		return
	}
	form := c.Request.Form

	if form.Get(epaycoSignatureField) == "" {
		metrics.RecordWebhookEvent(webhookUseCase.ProviderEpayco, metrics.OutcomeRejected)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrMissingSignature),
			Message: "Missing confirmation signature",
		})
		return
	}

	if err := webhookUseCase.VerifyEpaycoSignature(form, h.epaycoCreds); err != nil {
		h.logger.Warn("Rejected ePayco webhook delivery", map[string]any{
			"error":     err.Error(),
			"client_ip": c.ClientIP(),
			"reference": form.Get("x_ref_payco"),
		})
		metrics.RecordWebhookEvent(webhookUseCase.ProviderEpayco, metrics.OutcomeUnauthorized)
		c.JSON(domainerr.HTTPStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Invalid confirmation signature",
		})
		return
	}

	if err := h.reconciler.HandleEpaycoEvent(c.Request.Context(), form); err != nil {
		status := domainerr.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			metrics.RecordWebhookEvent(webhookUseCase.ProviderEpayco, metrics.OutcomeFailed)
		} else {
			metrics.RecordWebhookEvent(webhookUseCase.ProviderEpayco, metrics.OutcomeRejected)
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Failed to process confirmation",
		})
		return
	}

	metrics.RecordWebhookEvent(webhookUseCase.ProviderEpayco, metrics.OutcomeProcessed)
	c.String(http.StatusOK, "OK")
}
