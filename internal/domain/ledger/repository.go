package ledger

import (
	"context"

	"github.com/customer-ledger/internal/domain/customer"
)

// StatementLimit caps how many recent transactions a statement carries
const StatementLimit = 10

// Repository defines the ledger engine's persistence contract. All
// coordination between concurrent callers is delegated to the store; the
// engine keeps no mutable state of its own.
type Repository interface {
	// ApplyTransaction atomically moves the customer's balance by the signed
	// delta of (value, txType) and records the transaction, but only when the
	// resulting balance stays within the customer's limit.
	// Returns customer.ErrCustomerNotFound if no such customer exists and
	// customer.ErrInsufficientLimit if the movement would breach the limit;
	// in both cases nothing is persisted.
	ApplyTransaction(ctx context.Context, customerID int, value int64, txType TransactionType, description string) (*BalanceUpdate, error)

	// ReadStatement returns the customer together with its most recent
	// transactions (newest first, at most StatementLimit) as one consistent
	// snapshot. A customer without transactions yields an empty slice, not
	// an error. Returns customer.ErrCustomerNotFound if no such customer
	// exists.
	ReadStatement(ctx context.Context, customerID int) (*customer.Customer, []Transaction, error)
}
