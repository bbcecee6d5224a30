package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/transaction-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/transaction-ledger/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, ledgerHandler *handler.LedgerHandler) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/credit", ledgerHandler.Credit)
		v1.POST("/debit", ledgerHandler.Debit)
		v1.POST("/revert", ledgerHandler.Revert)
		v1.GET("/balance", ledgerHandler.GetBalance)
		v1.GET("/transactions", ledgerHandler.ListTransactions)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Order matters: panic recovery wraps everything else.
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
