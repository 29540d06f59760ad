package service

import (
	"context"

	"github.com/customer-ledger/internal/domain/ledger"
)

// LedgerService defines the interface for ledger operations exposed to the
// HTTP handlers
type LedgerService interface {
	// ApplyTransaction moves the customer's balance by the signed delta of
	// (value, txType) and records the movement, returning the limit and the
	// post-transaction balance.
	// Returns customer.ErrCustomerNotFound or customer.ErrInsufficientLimit
	// as typed failures; anything else is a store failure.
	ApplyTransaction(ctx context.Context, customerID int, value int64, txType ledger.TransactionType, description string) (*ledger.BalanceUpdate, error)

	// ReadStatement returns the customer's balance snapshot together with its
	// most recent transactions, newest first.
	// Returns customer.ErrCustomerNotFound if the customer doesn't exist.
	ReadStatement(ctx context.Context, customerID int) (*ledger.Statement, error)
}
