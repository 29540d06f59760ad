package handler

import (
	"time"

	"github.com/customer-ledger/internal/domain/ledger"
)

// CreateTransactionRequest represents a request to post a movement against a
// customer. Value is the positive magnitude; the direction is carried by the
// single-letter type code.
type CreateTransactionRequest struct {
	Value       int64  `json:"valor" binding:"required,gt=0"`
	Type        string `json:"tipo" binding:"required,oneof=c d"`
	Description string `json:"descricao" binding:"required"`
}

// CreateTransactionResponse carries the customer's limit and the balance
// after the movement
type CreateTransactionResponse struct {
	Limit   int64 `json:"limite"`
	Balance int64 `json:"saldo"`
}

// StatementResponse is the statement wire shape: a balance snapshot plus the
// most recent transactions, newest first
type StatementResponse struct {
	Balance          StatementBalance       `json:"saldo"`
	LastTransactions []StatementTransaction `json:"ultimas_transacoes"`
}

// StatementBalance is the balance section of a statement. Date is when the
// statement was produced, not when any transaction happened.
type StatementBalance struct {
	Total int64     `json:"total"`
	Limit int64     `json:"limite"`
	Date  time.Time `json:"data_extrato"`
}

// StatementTransaction represents one movement inside a statement
type StatementTransaction struct {
	Value       int64     `json:"valor"`
	Type        string    `json:"tipo"`
	Description string    `json:"descricao"`
	CreatedAt   time.Time `json:"realizada_em"`
}

// mapStatementToResponse maps a domain statement to its wire shape. The
// transaction list is always present, empty rather than null.
func mapStatementToResponse(statement *ledger.Statement) StatementResponse {
	transactions := make([]StatementTransaction, 0, len(statement.Transactions))
	for _, tx := range statement.Transactions {
		transactions = append(transactions, StatementTransaction{
			Value:       tx.Value,
			Type:        string(tx.Type),
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
		})
	}

	return StatementResponse{
		Balance: StatementBalance{
			Total: statement.Balance,
			Limit: statement.Limit,
			Date:  statement.GeneratedAt,
		},
		LastTransactions: transactions,
	}
}
