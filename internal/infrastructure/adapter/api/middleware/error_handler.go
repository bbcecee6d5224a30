package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/transaction-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-ledger/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler converts a handler panic into a logged 500 with the standard
// error body instead of dropping the connection
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Recovered from panic while handling request", map[string]any{
					"panic":      r,
					"method":     c.Request.Method,
					"path":       c.Request.URL.Path,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetHeader("X-Request-ID"),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
