package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/customer-ledger/internal/api_gateway/service"
	"github.com/customer-ledger/internal/domain/customer"
	"github.com/gin-gonic/gin"
)

// StatementHandler handles HTTP requests for customer statements
type StatementHandler struct {
	ledgerService service.LedgerService
	logger        *slog.Logger
}

// NewStatementHandler creates a new statement handler
func NewStatementHandler(logger *slog.Logger, ledgerService service.LedgerService) *StatementHandler {
	return &StatementHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// GetByCustomerID returns the customer's balance snapshot and its most
// recent transactions, newest first. A customer without transactions gets an
// empty list, not a 404.
func (h *StatementHandler) GetByCustomerID(c *gin.Context) {
	idParam := c.Param("id")
	customerID, err := strconv.Atoi(idParam)
	if err != nil {
		h.logger.Error("Invalid customer ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid customer ID")
		return
	}

	statement, err := h.ledgerService.ReadStatement(c.Request.Context(), customerID)
	if err != nil {
		var notFound customer.ErrCustomerNotFound
		if errors.As(err, &notFound) {
			RespondNotFound(c, "Customer not found")
			return
		}
		h.logger.Error("Failed to read statement", "customer_id", customerID, "error", err)
		RespondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, mapStatementToResponse(statement))
}
