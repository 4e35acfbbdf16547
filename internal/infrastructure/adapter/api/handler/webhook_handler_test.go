package handler

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	notifport "github.com/easybots/storefront-backend/internal/domain/port/notification"
	webhookUseCase "github.com/easybots/storefront-backend/internal/domain/usecase/webhook"
	coreMocks "github.com/easybots/storefront-backend/mocks/port/core"
	notificationMocks "github.com/easybots/storefront-backend/mocks/port/notification"
	persistenceMocks "github.com/easybots/storefront-backend/mocks/port/persistence"
)

const (
	testBoldSecret       = "bold-secret"
	testEpaycoCustomerID = "cust-1"
	testEpaycoPublicKey  = "pub-key"
	testEpaycoPrivateKey = "priv-key"
)

func hmacHex(payload []byte, key string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

type webhookTestEnv struct {
	router   *gin.Engine
	store    *persistenceMocks.MockTransactionStore
	notifier *notificationMocks.MockNotifier
}

func newWebhookTestEnv(boldCreds webhookUseCase.BoldCredentials, epaycoCreds webhookUseCase.EpaycoCredentials) *webhookTestEnv {
	gin.SetMode(gin.TestMode)

	mockStore := new(persistenceMocks.MockTransactionStore)
	mockNotifier := new(notificationMocks.MockNotifier)

	mockLogger := new(coreMocks.MockLogger)
	mockLogger.On("Debug", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Info", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Warn", mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.On("Error", mock.Anything, mock.Anything).Return().Maybe()

	reconciler := webhookUseCase.NewReconciler(mockStore, mockNotifier, mockLogger)
	webhookHandler := NewWebhookHandler(reconciler, boldCreds, epaycoCreds, mockLogger)

	router := gin.New()
	router.POST("/webhooks/bold", webhookHandler.HandleBold)
	router.POST("/webhooks/epayco", webhookHandler.HandleEpayco)

	return &webhookTestEnv{
		router:   router,
		store:    mockStore,
		notifier: mockNotifier,
	}
}

func defaultTestEnv() *webhookTestEnv {
	return newWebhookTestEnv(
		webhookUseCase.BoldCredentials{WebhookSecret: testBoldSecret},
		webhookUseCase.EpaycoCredentials{
			CustomerID: testEpaycoCustomerID,
			PublicKey:  testEpaycoPublicKey,
			PrivateKey: testEpaycoPrivateKey,
		},
	)
}

func paidBoldBody() []byte {
	return []byte(`{
		"event": "transaction.created",
		"data": {
			"id": "evt-1",
			"reference": "easybots-botpress-expert-1768478400000",
			"amount_in_cents": 14900,
			"currency": "USD",
			"status": "PAID",
			"payment_method": {"metadata": {"productId": "botpress-expert", "userId": "user-42"}},
			"customer": {"name": "Jane Doe", "email": "jane@example.com"}
		}
	}`)
}

func postBold(router *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/bold", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Bold-Signature", signature)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestWebhookHandler_HandleBold(t *testing.T) {
	t.Run("should accept a signed paid delivery and acknowledge it", func(t *testing.T) {
		env := defaultTestEnv()
		body := paidBoldBody()

		env.store.On("Create", mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		env.notifier.On("Notify", mock.Anything, mock.AnythingOfType("*entity.Transaction")).
			Return(notifport.Result{Sent: true}, nil)

		recorder := postBold(env.router, body, hmacHex(body, testBoldSecret))

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response map[string]any
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, true, response["success"])

		env.store.AssertExpectations(t)
		env.notifier.AssertExpectations(t)
	})

	t.Run("should reject an invalid signature with 401 and no side effects", func(t *testing.T) {
		env := defaultTestEnv()
		body := paidBoldBody()

		recorder := postBold(env.router, body, hmacHex(body, "wrong-secret"))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		env.store.AssertNotCalled(t, "Create")
		env.notifier.AssertNotCalled(t, "Notify")
	})

	t.Run("should reject a missing signature header with 400", func(t *testing.T) {
		env := defaultTestEnv()

		recorder := postBold(env.router, paidBoldBody(), "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		env.store.AssertNotCalled(t, "Create")
	})

	t.Run("should answer 500 when the webhook secret is not configured", func(t *testing.T) {
		env := newWebhookTestEnv(webhookUseCase.BoldCredentials{}, webhookUseCase.EpaycoCredentials{
			CustomerID: testEpaycoCustomerID,
			PublicKey:  testEpaycoPublicKey,
			PrivateKey: testEpaycoPrivateKey,
		})
		body := paidBoldBody()

		recorder := postBold(env.router, body, hmacHex(body, testBoldSecret))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		env.store.AssertNotCalled(t, "Create")
	})

	t.Run("should reject a malformed payload with 400 after signature passes", func(t *testing.T) {
		env := defaultTestEnv()
		body := []byte(`not json`)

		recorder := postBold(env.router, body, hmacHex(body, testBoldSecret))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func signedEpaycoForm() url.Values {
	form := url.Values{}
	form.Set("x_ref_payco", "ref-123")
	form.Set("x_transaction_id", "txn-456")
	form.Set("x_amount", "596000")
	form.Set("x_currency_code", "COP")
	form.Set("x_cod_transaction_state", "1")
	form.Set("x_cod_response", "1")
	form.Set("x_extra1", "easybots-botpress-expert-1768478400000")
	form.Set("x_extra2", "user-42")
	form.Set("x_extra3", "botpress-expert")

	payload := strings.Join([]string{
		testEpaycoCustomerID,
		testEpaycoPrivateKey,
		form.Get("x_ref_payco"),
		form.Get("x_transaction_id"),
		form.Get("x_amount"),
		form.Get("x_currency_code"),
	}, "^")
	form.Set("x_signature", hmacHex([]byte(payload), testEpaycoPrivateKey))
	return form
}

func postEpayco(router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/epayco", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestWebhookHandler_HandleEpayco(t *testing.T) {
	t.Run("should accept a signed approved confirmation with a plain OK", func(t *testing.T) {
		env := defaultTestEnv()

		env.store.On("Create", mock.Anything, mock.AnythingOfType("*entity.Transaction")).Return(nil)
		env.notifier.On("Notify", mock.Anything, mock.AnythingOfType("*entity.Transaction")).
			Return(notifport.Result{Sent: true}, nil)

		recorder := postEpayco(env.router, signedEpaycoForm())

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "OK", recorder.Body.String())

		env.store.AssertExpectations(t)
		env.notifier.AssertExpectations(t)
	})

	t.Run("should reject a tampered confirmation with 401", func(t *testing.T) {
		env := defaultTestEnv()

		form := signedEpaycoForm()
		form.Set("x_amount", "1")

		recorder := postEpayco(env.router, form)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		env.store.AssertNotCalled(t, "Create")
	})

	t.Run("should reject a missing signature with 400", func(t *testing.T) {
		env := defaultTestEnv()

		form := signedEpaycoForm()
		form.Del("x_signature")

		recorder := postEpayco(env.router, form)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("should reject missing extras with 400 after signature passes", func(t *testing.T) {
		env := defaultTestEnv()

		form := url.Values{}
		form.Set("x_ref_payco", "ref-123")
		form.Set("x_transaction_id", "txn-456")
		form.Set("x_amount", "596000")
		form.Set("x_currency_code", "COP")
		form.Set("x_cod_response", "1")
		form.Set("x_cod_transaction_state", "1")

		payload := strings.Join([]string{
			testEpaycoCustomerID, testEpaycoPrivateKey,
			"ref-123", "txn-456", "596000", "COP",
		}, "^")
		form.Set("x_signature", hmacHex([]byte(payload), testEpaycoPrivateKey))

		recorder := postEpayco(env.router, form)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		env.store.AssertNotCalled(t, "Create")
	})

	t.Run("should answer 500 when provider credentials are not configured", func(t *testing.T) {
		env := newWebhookTestEnv(
			webhookUseCase.BoldCredentials{WebhookSecret: testBoldSecret},
			webhookUseCase.EpaycoCredentials{},
		)

		recorder := postEpayco(env.router, signedEpaycoForm())

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})

	t.Run("should swallow update misses and still acknowledge", func(t *testing.T) {
		env := defaultTestEnv()

		form := signedEpaycoForm()
		form.Set("x_cod_response", "2")
		form.Set("x_cod_transaction_state", "4")

		// The state fields are not covered by the signature, so the original
		// x_signature stays valid
		env.store.On("UpdateStatus", mock.Anything,
			"easybots-botpress-expert-1768478400000", mock.Anything, "user-42").Return(nil)

		recorder := postEpayco(env.router, form)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "OK", recorder.Body.String())
		env.store.AssertNotCalled(t, "Create")
		env.notifier.AssertNotCalled(t, "Notify")
	})
}
