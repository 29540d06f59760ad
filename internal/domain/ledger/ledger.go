package ledger

import (
	"errors"
	"time"
)

// ErrInvalidTransactionType indicates a type code other than "c" or "d"
var ErrInvalidTransactionType = errors.New("transaction type must be \"c\" or \"d\"")

// TransactionType is the single-letter wire code for a balance movement
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "c"
	TransactionTypeDebit  TransactionType = "d"
)

// ParseTransactionType validates and converts a wire type code
func ParseTransactionType(code string) (TransactionType, error) {
	switch TransactionType(code) {
	case TransactionTypeCredit, TransactionTypeDebit:
		return TransactionType(code), nil
	}
	return "", ErrInvalidTransactionType
}

// SignedDelta converts a positive magnitude into the signed balance movement:
// positive for credits, negative for debits.
func (t TransactionType) SignedDelta(value int64) int64 {
	if t == TransactionTypeDebit {
		return -value
	}
	return value
}

// Transaction is an immutable, append-only ledger record. Value is always
// the positive magnitude; the direction lives in Type.
type Transaction struct {
	ID          int64           `json:"id"`
	Value       int64           `json:"value"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	CustomerID  int             `json:"customer_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BalanceUpdate is the outcome of a successfully applied transaction:
// the customer's limit and the balance after the movement.
type BalanceUpdate struct {
	Limit   int64 `json:"limit"`
	Balance int64 `json:"balance"`
}

// Statement is a point-in-time snapshot of a customer's balance together
// with its most recent transactions, newest first. GeneratedAt records when
// the snapshot was produced, independent of any transaction timestamp.
type Statement struct {
	Limit        int64         `json:"limit"`
	Balance      int64         `json:"balance"`
	GeneratedAt  time.Time     `json:"generated_at"`
	Transactions []Transaction `json:"transactions"`
}
