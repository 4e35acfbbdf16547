package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/easybots/storefront-backend/internal/domain/error"
)

// signBody computes the expected hex HMAC-SHA256 for test payloads
func signBody(payload []byte, key string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyBoldSignature(t *testing.T) {
	creds := BoldCredentials{WebhookSecret: "test-secret"}
	body := []byte(`{"event":"transaction.created","data":{"reference":"easybots-botpress-expert-1700000000000"}}`)

	t.Run("should accept a correctly signed body", func(t *testing.T) {
		err := VerifyBoldSignature(body, signBody(body, "test-secret"), creds)
		assert.NoError(t, err)
	})

	t.Run("should reject when secret is not configured", func(t *testing.T) {
		err := VerifyBoldSignature(body, signBody(body, "test-secret"), BoldCredentials{})
		assert.ErrorIs(t, err, errs.ErrWebhookSecretMissing)
	})

	t.Run("should reject a missing signature", func(t *testing.T) {
		err := VerifyBoldSignature(body, "", creds)
		assert.ErrorIs(t, err, errs.ErrMissingSignature)
	})

	t.Run("should reject a signature computed with the wrong secret", func(t *testing.T) {
		err := VerifyBoldSignature(body, signBody(body, "other-secret"), creds)
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})

	t.Run("should reject when a single body byte changed", func(t *testing.T) {
		signature := signBody(body, "test-secret")

		mutated := make([]byte, len(body))
		copy(mutated, body)
		mutated[len(mutated)-2] ^= 0x01

		err := VerifyBoldSignature(mutated, signature, creds)
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})
}

func TestVerifyEpaycoSignature(t *testing.T) {
	creds := EpaycoCredentials{
		CustomerID: "cust-1",
		PublicKey:  "pub-key",
		PrivateKey: "priv-key",
	}

	buildForm := func() url.Values {
		form := url.Values{}
		form.Set("x_ref_payco", "ref-123")
		form.Set("x_transaction_id", "txn-456")
		form.Set("x_amount", "596000")
		form.Set("x_currency_code", "COP")
		return form
	}

	sign := func(form url.Values, c EpaycoCredentials) string {
		payload := EpaycoSignaturePayload(
			c,
			form.Get("x_ref_payco"),
			form.Get("x_transaction_id"),
			form.Get("x_amount"),
			form.Get("x_currency_code"),
		)
		return signBody([]byte(payload), c.PrivateKey)
	}

	t.Run("should accept a correctly signed confirmation", func(t *testing.T) {
		form := buildForm()
		form.Set("x_signature", sign(form, creds))

		err := VerifyEpaycoSignature(form, creds)
		assert.NoError(t, err)
	})

	t.Run("should build the caret-joined payload in field order", func(t *testing.T) {
		payload := EpaycoSignaturePayload(creds, "ref-123", "txn-456", "596000", "COP")
		assert.Equal(t, "cust-1^priv-key^ref-123^txn-456^596000^COP", payload)
	})

	t.Run("should reject when credentials are incomplete", func(t *testing.T) {
		form := buildForm()
		form.Set("x_signature", sign(form, creds))

		err := VerifyEpaycoSignature(form, EpaycoCredentials{CustomerID: "cust-1"})
		assert.ErrorIs(t, err, errs.ErrWebhookSecretMissing)
	})

	t.Run("should reject a missing signature field", func(t *testing.T) {
		err := VerifyEpaycoSignature(buildForm(), creds)
		assert.ErrorIs(t, err, errs.ErrMissingSignature)
	})

	t.Run("should reject when a signed field was tampered with", func(t *testing.T) {
		form := buildForm()
		form.Set("x_signature", sign(form, creds))
		form.Set("x_amount", "1")

		err := VerifyEpaycoSignature(form, creds)
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})

	t.Run("should reject a signature computed with the wrong private key", func(t *testing.T) {
		form := buildForm()
		otherCreds := creds
		otherCreds.PrivateKey = "other-key"
		form.Set("x_signature", sign(form, otherCreds))

		err := VerifyEpaycoSignature(form, creds)
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})
}
