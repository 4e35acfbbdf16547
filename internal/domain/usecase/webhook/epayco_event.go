package webhook

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/easybots/storefront-backend/internal/domain/entity"
	errs "github.com/easybots/storefront-backend/internal/domain/error"
)

// epaycoResponseApproved is the x_cod_response value for an approved
// transaction. Only approved events take the create path; everything else
// routes to update-only.
const epaycoResponseApproved = "1"

// EpaycoEvent is the normalized view of an ePayco confirmation, decoded from
// the form-encoded body. ePayco does not carry the business key natively, so
// orderID, userID and productID round-trip through the x_extra1..3
// passthrough fields set at checkout time.
type EpaycoEvent struct {
	Reference     string // x_ref_payco, ePayco's own transaction reference
	TransactionID string // x_transaction_id
	Amount        float64
	CurrencyCode  string
	StateCode     string // x_cod_transaction_state
	ResponseCode  string // x_cod_response
	OrderID       string // x_extra1
	UserID        string // x_extra2
	ProductID     string // x_extra3
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// ParseEpaycoEvent decodes a signature-verified ePayco confirmation form.
// The three passthrough extras are mandatory: without them the event cannot
// be reconciled to an order and owner, so normalization fails instead of
// defaulting.
func ParseEpaycoEvent(form url.Values) (*EpaycoEvent, error) {
	orderID := form.Get("x_extra1")
	userID := form.Get("x_extra2")
	productID := form.Get("x_extra3")
	if orderID == "" || userID == "" || productID == "" {
		return nil, fmt.Errorf("%w: x_extra1/x_extra2/x_extra3 are required", errs.ErrMissingExtras)
	}

	amount, err := strconv.ParseFloat(form.Get("x_amount"), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad x_amount %q", errs.ErrInvalidPayload, form.Get("x_amount"))
	}

	return &EpaycoEvent{
		Reference:     form.Get("x_ref_payco"),
		TransactionID: form.Get("x_transaction_id"),
		Amount:        amount,
		CurrencyCode:  form.Get("x_currency_code"),
		StateCode:     form.Get("x_cod_transaction_state"),
		ResponseCode:  form.Get("x_cod_response"),
		OrderID:       orderID,
		UserID:        userID,
		ProductID:     productID,
		CustomerName:  fallback(form.Get("x_customer_name"), entity.UnknownCustomer),
		CustomerEmail: fallback(form.Get("x_customer_email"), entity.UnknownCustomer),
		CustomerPhone: fallback(form.Get("x_customer_phone"), entity.UnknownCustomer),
	}, nil
}

// Approved reports whether ePayco approved the transaction
func (e *EpaycoEvent) Approved() bool {
	return e.ResponseCode == epaycoResponseApproved
}

// Transaction normalizes the event into the canonical transaction record
func (e *EpaycoEvent) Transaction() *entity.Transaction {
	return &entity.Transaction{
		OrderID:       e.OrderID,
		ProductID:     e.ProductID,
		UserID:        e.UserID,
		Amount:        e.Amount,
		Currency:      e.CurrencyCode,
		Status:        mapEpaycoStatus(e.StateCode),
		Reference:     e.Reference,
		CustomerName:  e.CustomerName,
		CustomerEmail: e.CustomerEmail,
		CustomerPhone: e.CustomerPhone,
	}
}

// mapEpaycoStatus translates ePayco's numeric transaction state codes:
// 1 accepted, 3 pending, 6 reversed, 10 abandoned, 11 cancelled. Everything
// else (rejected, failed, expired) maps to FAILED.
func mapEpaycoStatus(stateCode string) entity.TransactionStatus {
	switch stateCode {
	case "1":
		return entity.StatusPaid
	case "3":
		return entity.StatusPending
	case "6", "10", "11":
		return entity.StatusCancelled
	default:
		return entity.StatusFailed
	}
}
