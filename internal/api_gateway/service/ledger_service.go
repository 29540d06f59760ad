package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/customer-ledger/internal/domain/customer"
	"github.com/customer-ledger/internal/domain/ledger"
)

// LedgerServiceImpl implements the LedgerService interface. It holds no
// mutable state; serialization of concurrent movements on the same customer
// is entirely the repository's concern.
type LedgerServiceImpl struct {
	ledgerRepo ledger.Repository
	logger     *slog.Logger
	now        func() time.Time // Statement timestamp source, overridable in tests
}

// NewLedgerService creates a new ledger service
func NewLedgerService(logger *slog.Logger, ledgerRepo ledger.Repository) LedgerService {
	return &LedgerServiceImpl{
		ledgerRepo: ledgerRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// ApplyTransaction delegates the atomic balance movement to the repository
func (s *LedgerServiceImpl) ApplyTransaction(ctx context.Context, customerID int, value int64, txType ledger.TransactionType, description string) (*ledger.BalanceUpdate, error) {
	update, err := s.ledgerRepo.ApplyTransaction(ctx, customerID, value, txType, description)
	if err != nil {
		var notFound customer.ErrCustomerNotFound
		var insufficient customer.ErrInsufficientLimit
		if !errors.As(err, &notFound) && !errors.As(err, &insufficient) {
			s.logger.Error("Failed to apply transaction",
				"customer_id", customerID,
				"type", string(txType),
				"value", value,
				"error", err,
			)
		}
		return nil, err
	}

	s.logger.Info("Transaction applied",
		"customer_id", customerID,
		"type", string(txType),
		"value", value,
		"balance", update.Balance,
	)

	return update, nil
}

// ReadStatement builds the statement snapshot, stamping it with the time the
// read was served rather than any transaction timestamp.
func (s *LedgerServiceImpl) ReadStatement(ctx context.Context, customerID int) (*ledger.Statement, error) {
	cust, transactions, err := s.ledgerRepo.ReadStatement(ctx, customerID)
	if err != nil {
		var notFound customer.ErrCustomerNotFound
		if !errors.As(err, &notFound) {
			s.logger.Error("Failed to read statement", "customer_id", customerID, "error", err)
		}
		return nil, err
	}

	return &ledger.Statement{
		Limit:        cust.Limit,
		Balance:      cust.Balance,
		GeneratedAt:  s.now().UTC(),
		Transactions: transactions,
	}, nil
}
