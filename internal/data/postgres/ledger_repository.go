// Package postgres provides the PostgreSQL implementation of the ledger
// engine. The balance-mutation protocol lives here: the limit check and the
// balance update are a single conditional statement, so the store evaluates
// the predicate and the write together and concurrent movements on the same
// customer cannot lose updates regardless of isolation level.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/customer-ledger/internal/domain/customer"
	"github.com/customer-ledger/internal/domain/ledger"
	"github.com/customer-ledger/internal/platform/persistence"
	"github.com/jackc/pgx/v5"
)

// applyQuery moves the balance only when it stays within the limit. The
// first CTE captures the pre-update row so a missing customer (no row) can
// be told apart from a failed predicate (count_update = 0), and the update
// returns the balance it actually committed, which under READ COMMITTED may
// differ from the captured snapshot plus the delta.
const applyQuery = `
		WITH cur AS (
			SELECT "limit", balance FROM customers WHERE id = $2
		), upd AS (
			UPDATE customers SET balance = balance + $1
			WHERE id = $2 AND balance + $1 >= -"limit"
			RETURNING balance
		)
		SELECT cur."limit", (SELECT balance FROM upd) AS new_balance, (SELECT COUNT(*) FROM upd) AS count_update FROM cur
	`

const insertTransactionQuery = `
		INSERT INTO transactions (value, "type", description, customer_id)
		VALUES ($1, $2, $3, $4)
	`

// statementQuery reads the customer and its most recent transactions in one
// outer-join query, so a customer without transactions still produces a row
// and the snapshot is consistent with any concurrently committed movement.
// The cap comes from ledger.StatementLimit so the query and the contract
// cannot drift apart.
var statementQuery = fmt.Sprintf(`
		SELECT
			c.id, c."limit", c.balance, c.created_at,
			t.id, t.value, t."type", t.description, t.created_at
		FROM customers c
		LEFT JOIN transactions t ON t.customer_id = c.id
		WHERE c.id = $1
		ORDER BY t.created_at DESC
		LIMIT %d
	`, ledger.StatementLimit)

// LedgerRepository implements the ledger.Repository interface for PostgreSQL
type LedgerRepository struct {
	db     persistence.TxBeginner // *pgxpool.Pool in production
	logger *slog.Logger
}

// NewLedgerRepository creates a new PostgreSQL ledger repository backed by
// the process-wide connection pool.
func NewLedgerRepository(logger *slog.Logger, db *persistence.PostgresDB) ledger.Repository {
	return &LedgerRepository{
		db:     db.Pool(),
		logger: logger,
	}
}

// ApplyTransaction runs the conditional balance update and the transaction
// insert as one atomic unit. If the insert fails the balance change rolls
// back with it; a committed state never has one without the other.
func (r *LedgerRepository) ApplyTransaction(ctx context.Context, customerID int, value int64, txType ledger.TransactionType, description string) (*ledger.BalanceUpdate, error) {
	delta := txType.SignedDelta(value)

	var (
		limit      int64
		newBalance *int64 // NULL when the predicate rejected the update
	)
	err := persistence.ExecuteTx(ctx, r.db, func(tx pgx.Tx) error {
		var updated int64
		err := tx.QueryRow(ctx, applyQuery, delta, customerID).Scan(&limit, &newBalance, &updated)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return customer.ErrCustomerNotFound{CustomerID: customerID}
			}
			r.logger.Error("Failed to update customer balance", "customer_id", customerID, "error", err)
			return fmt.Errorf("failed to update customer balance: %w", err)
		}

		if updated == 0 {
			return customer.ErrInsufficientLimit{CustomerID: customerID}
		}

		if _, err := tx.Exec(ctx, insertTransactionQuery, value, txType, description, customerID); err != nil {
			r.logger.Error("Failed to insert transaction", "customer_id", customerID, "error", err)
			return fmt.Errorf("failed to insert transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// newBalance is the value the update committed, not a derivation from
	// the pre-update snapshot, so it stays accurate when a concurrent
	// movement on the same customer commits first.
	return &ledger.BalanceUpdate{
		Limit:   limit,
		Balance: *newBalance,
	}, nil
}

// ReadStatement returns the customer snapshot and up to ledger.StatementLimit
// most recent transactions, newest first.
func (r *LedgerRepository) ReadStatement(ctx context.Context, customerID int) (*customer.Customer, []ledger.Transaction, error) {
	rows, err := r.db.Query(ctx, statementQuery, customerID)
	if err != nil {
		r.logger.Error("Failed to query statement", "customer_id", customerID, "error", err)
		return nil, nil, fmt.Errorf("failed to query statement: %w", err)
	}
	defer rows.Close()

	var cust *customer.Customer
	transactions := make([]ledger.Transaction, 0, ledger.StatementLimit)

	for rows.Next() {
		var (
			c customer.Customer
			// Transaction columns are NULL for customers without any movement
			txID          *int64
			txValue       *int64
			txType        *string
			txDescription *string
			txCreatedAt   *time.Time
		)
		if err := rows.Scan(
			&c.ID, &c.Limit, &c.Balance, &c.CreatedAt,
			&txID, &txValue, &txType, &txDescription, &txCreatedAt,
		); err != nil {
			r.logger.Error("Failed to scan statement row", "customer_id", customerID, "error", err)
			return nil, nil, fmt.Errorf("failed to scan statement row: %w", err)
		}

		if cust == nil {
			cust = &c
		}

		if txID != nil {
			transactions = append(transactions, ledger.Transaction{
				ID:          *txID,
				Value:       *txValue,
				Type:        ledger.TransactionType(*txType),
				Description: *txDescription,
				CustomerID:  c.ID,
				CreatedAt:   *txCreatedAt,
			})
		}
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to read statement rows", "customer_id", customerID, "error", err)
		return nil, nil, fmt.Errorf("failed to read statement rows: %w", err)
	}

	if cust == nil {
		return nil, nil, customer.ErrCustomerNotFound{CustomerID: customerID}
	}

	return cust, transactions, nil
}
