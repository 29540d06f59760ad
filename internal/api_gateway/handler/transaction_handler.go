package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/customer-ledger/internal/api_gateway/service"
	"github.com/customer-ledger/internal/domain/customer"
	"github.com/customer-ledger/internal/domain/ledger"
	"github.com/gin-gonic/gin"
)

// maxDescriptionLength bounds the description in code points, not bytes
const maxDescriptionLength = 10

// TransactionHandler handles HTTP requests for posting transactions
type TransactionHandler struct {
	ledgerService service.LedgerService
	logger        *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(logger *slog.Logger, ledgerService service.LedgerService) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// Create posts a credit or debit against a customer and returns the limit
// and post-transaction balance. The movement either fully commits or leaves
// no trace; a movement that would breach the credit limit is rejected as
// unprocessable.
func (h *TransactionHandler) Create(c *gin.Context) {
	idParam := c.Param("id")
	customerID, err := strconv.Atoi(idParam)
	if err != nil {
		h.logger.Error("Invalid customer ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid customer ID")
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	descLength := utf8.RuneCountInString(req.Description)
	if descLength == 0 || descLength > maxDescriptionLength {
		h.logger.Error("Invalid description length", "length", descLength)
		RespondBadRequest(c, "Description must be between 1 and 10 characters")
		return
	}

	txType, err := ledger.ParseTransactionType(req.Type)
	if err != nil {
		h.logger.Error("Invalid transaction type", "type", req.Type)
		RespondBadRequest(c, "Invalid transaction type")
		return
	}

	update, err := h.ledgerService.ApplyTransaction(c.Request.Context(), customerID, req.Value, txType, req.Description)
	if err != nil {
		var notFound customer.ErrCustomerNotFound
		if errors.As(err, &notFound) {
			RespondNotFound(c, "Customer not found")
			return
		}
		var insufficient customer.ErrInsufficientLimit
		if errors.As(err, &insufficient) {
			RespondUnprocessable(c, "Transaction exceeds credit limit")
			return
		}
		h.logger.Error("Failed to apply transaction", "customer_id", customerID, "error", err)
		RespondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, CreateTransactionResponse{
		Limit:   update.Limit,
		Balance: update.Balance,
	})
}
