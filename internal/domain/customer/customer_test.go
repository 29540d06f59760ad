package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomer_CanApply(t *testing.T) {
	testCases := []struct {
		name     string
		balance  int64
		limit    int64
		delta    int64
		expected bool
	}{
		{"CreditAlwaysAllowed", -500, 1000, 300, true},
		{"DebitWithinLimit", 0, 1000, -500, true},
		{"DebitExactlyAtLimit", -500, 1000, -500, true},
		{"DebitBeyondLimit", -500, 1000, -501, false},
		{"ZeroLimitNoDebit", 0, 0, -1, false},
		{"ZeroLimitCreditAllowed", 0, 0, 10, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Customer{ID: 1, Limit: tc.limit, Balance: tc.balance}
			assert.Equal(t, tc.expected, c.CanApply(tc.delta))
		})
	}
}

func TestDomainErrors(t *testing.T) {
	t.Run("CustomerNotFound", func(t *testing.T) {
		err := ErrCustomerNotFound{CustomerID: 42}
		assert.EqualError(t, err, "customer not found: 42")
	})

	t.Run("InsufficientLimit", func(t *testing.T) {
		err := ErrInsufficientLimit{CustomerID: 7}
		assert.EqualError(t, err, "operation exceeds credit limit for customer: 7")
	})
}
