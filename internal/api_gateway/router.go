package api_gateway

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/customer-ledger/internal/api_gateway/handler"
	"github.com/customer-ledger/internal/api_gateway/middleware"
	"github.com/gin-gonic/gin"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	statementHandler *handler.StatementHandler,
	transactionHandler *handler.TransactionHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CorrelationID())

	// Customer ledger operations
	customers := r.Group("/customers")
	{
		customers.GET("/:id/statement", statementHandler.GetByCustomerID)
		customers.POST("/:id/transactions", transactionHandler.Create)
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
