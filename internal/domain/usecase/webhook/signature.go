package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"

	errs "github.com/easybots/storefront-backend/internal/domain/error"
)

// BoldCredentials holds the secret material for verifying Bold webhooks
type BoldCredentials struct {
	WebhookSecret string
}

// Configured reports whether the Bold webhook secret is present
func (c BoldCredentials) Configured() bool {
	return c.WebhookSecret != ""
}

// EpaycoCredentials holds the key material for verifying ePayco webhooks.
// The signature covers a caret-joined string of the merchant customer ID,
// the private key and four transaction fields.
type EpaycoCredentials struct {
	CustomerID string
	PublicKey  string
	PrivateKey string
}

// Configured reports whether all ePayco key material is present
func (c EpaycoCredentials) Configured() bool {
	return c.CustomerID != "" && c.PublicKey != "" && c.PrivateKey != ""
}

// hmacSHA256Hex computes the hex-encoded HMAC-SHA256 of payload under key
func hmacSHA256Hex(payload []byte, key string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyBoldSignature checks a Bold webhook signature: the hex HMAC-SHA256
// of the exact raw body bytes under the shared secret. The body must be the
// unparsed request bytes; re-serializing parsed JSON would invalidate it.
func VerifyBoldSignature(rawBody []byte, signature string, creds BoldCredentials) error {
	if !creds.Configured() {
		return errs.ErrWebhookSecretMissing
	}
	if signature == "" {
		return errs.ErrMissingSignature
	}

	expected := hmacSHA256Hex(rawBody, creds.WebhookSecret)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return errs.ErrInvalidSignature
	}
	return nil
}

// EpaycoSignaturePayload builds the caret-delimited string ePayco signs:
// customerID^privateKey^reference^transactionID^amount^currencyCode
func EpaycoSignaturePayload(creds EpaycoCredentials, reference, transactionID, amount, currencyCode string) string {
	return strings.Join([]string{
		creds.CustomerID,
		creds.PrivateKey,
		reference,
		transactionID,
		amount,
		currencyCode,
	}, "^")
}

// VerifyEpaycoSignature checks an ePayco confirmation signature. The claimed
// signature travels inside the form body (x_signature); the expected value
// is the HMAC-SHA256 of the caret-joined payload under the private key.
func VerifyEpaycoSignature(form url.Values, creds EpaycoCredentials) error {
	if !creds.Configured() {
		return errs.ErrWebhookSecretMissing
	}

	signature := form.Get("x_signature")
	if signature == "" {
		return errs.ErrMissingSignature
	}

	payload := EpaycoSignaturePayload(
		creds,
		form.Get("x_ref_payco"),
		form.Get("x_transaction_id"),
		form.Get("x_amount"),
		form.Get("x_currency_code"),
	)
	expected := hmacSHA256Hex([]byte(payload), creds.PrivateKey)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return errs.ErrInvalidSignature
	}
	return nil
}
