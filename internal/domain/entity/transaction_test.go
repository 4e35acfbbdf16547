package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/easybots/storefront-backend/internal/domain/error"
)

func TestTransaction_Validate(t *testing.T) {
	valid := func() *Transaction {
		return &Transaction{
			OrderID:  "easybots-botpress-expert-1700000000000",
			UserID:   "user-42",
			Amount:   149,
			Currency: "USD",
			Status:   StatusPaid,
		}
	}

	t.Run("should accept a well-formed transaction", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("should reject a missing order ID", func(t *testing.T) {
		transaction := valid()
		transaction.OrderID = ""
		assert.ErrorIs(t, transaction.Validate(), errs.ErrMissingOrderID)
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		transaction := valid()
		transaction.Status = "SETTLED"
		assert.ErrorIs(t, transaction.Validate(), errs.ErrInvalidStatus)
	})

	t.Run("should reject a negative amount", func(t *testing.T) {
		transaction := valid()
		transaction.Amount = -1
		assert.ErrorIs(t, transaction.Validate(), errs.ErrNegativeAmount)
	})

	t.Run("should accept a zero amount", func(t *testing.T) {
		transaction := valid()
		transaction.Amount = 0
		assert.NoError(t, transaction.Validate())
	})
}

func TestTransaction_IsAnonymous(t *testing.T) {
	assert.True(t, (&Transaction{UserID: ""}).IsAnonymous())
	assert.True(t, (&Transaction{UserID: AnonymousUserID}).IsAnonymous())
	assert.False(t, (&Transaction{UserID: "user-42"}).IsAnonymous())
}

func TestTransaction_IsPaid(t *testing.T) {
	assert.True(t, (&Transaction{Status: StatusPaid}).IsPaid())
	assert.False(t, (&Transaction{Status: StatusPending}).IsPaid())
	assert.False(t, (&Transaction{Status: StatusFailed}).IsPaid())
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{"PAID", "PENDING", "FAILED", "CANCELLED"} {
		assert.True(t, IsValidStatus(status), "expected %s to be valid", status)
	}
	for _, status := range []string{"", "paid", "SETTLED", "OK"} {
		assert.False(t, IsValidStatus(status), "expected %s to be invalid", status)
	}
}
