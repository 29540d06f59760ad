package customer

import (
	"fmt"
	"time"
)

// Customer represents a ledger account holder. Limit is the maximum amount
// the balance may go negative by; both are stored in minor currency units.
type Customer struct {
	ID        int       `json:"id"`
	Limit     int64     `json:"limit"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// CanApply reports whether moving the balance by delta keeps the customer
// within its credit limit (balance >= -limit). The store enforces the same
// predicate atomically; this is only for in-memory checks and tests.
func (c *Customer) CanApply(delta int64) bool {
	return c.Balance+delta >= -c.Limit
}

// ErrCustomerNotFound indicates no customer exists for the given ID
type ErrCustomerNotFound struct {
	CustomerID int
}

func (e ErrCustomerNotFound) Error() string {
	return fmt.Sprintf("customer not found: %d", e.CustomerID)
}

// ErrInsufficientLimit indicates the requested movement would push the
// balance below the negative of the customer's limit
type ErrInsufficientLimit struct {
	CustomerID int
}

func (e ErrInsufficientLimit) Error() string {
	return fmt.Sprintf("operation exceeds credit limit for customer: %d", e.CustomerID)
}
