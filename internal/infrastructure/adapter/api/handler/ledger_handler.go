package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerr "github.com/amirhossein-jamali/transaction-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/transaction-ledger/internal/infrastructure/adapter/api/dto"
)

// entryOperation is the shared shape of the Credit and Debit engine calls.
type entryOperation func(
	ctx context.Context,
	id uuid.UUID,
	clientID uuid.UUID,
	timestamp time.Time,
	amount decimal.Decimal,
) (*usecase.OperationResult, error)

// LedgerHandler handles ledger-related HTTP requests. It owns request
// validation; the engine assumes inputs it receives are well-formed.
type LedgerHandler struct {
	ledger       usecase.LedgerUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(
	ledger usecase.LedgerUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *LedgerHandler {
	return &LedgerHandler{
		ledger:       ledger,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Credit handles the POST /api/v1/credit endpoint
func (h *LedgerHandler) Credit(c *gin.Context) {
	h.recordEntry(c, h.ledger.Credit)
}

// Debit handles the POST /api/v1/debit endpoint
func (h *LedgerHandler) Debit(c *gin.Context) {
	h.recordEntry(c, h.ledger.Debit)
}

// recordEntry parses and validates a credit/debit request body, then
// delegates to the given engine operation. Credit and Debit share the
// request and response shapes.
func (h *LedgerHandler) recordEntry(c *gin.Context, operation entryOperation) {
	var req dto.LedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid ledger entry request", map[string]any{
			"error": err.Error(),
			"path":  c.FullPath(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidIdentifier,
			Message: "Invalid request body",
		})
		return
	}

	id, clientID, ok := h.parseIdentifiers(c, req.ID, req.ClientID)
	if !ok {
		return
	}

	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidAmount,
			Message: "Amount must be greater than zero",
		})
		return
	}

	if req.DateTime.After(h.timeProvider.Now()) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeTimestampInFuture,
			Message: "DateTime must not be in the future",
		})
		return
	}

	result, err := operation(c.Request.Context(), id, clientID, req.DateTime.UTC(), req.Amount)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionResponse{
		InsertDateTime: result.Timestamp,
		ClientBalance:  result.Balance,
	})
}

// Revert handles the POST /api/v1/revert endpoint
func (h *LedgerHandler) Revert(c *gin.Context) {
	transactionID, ok := h.parseQueryID(c)
	if !ok {
		return
	}

	result, err := h.ledger.Revert(c.Request.Context(), transactionID)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RevertResponse{
		RevertDateTime: result.Timestamp,
		ClientBalance:  result.Balance,
	})
}

// GetBalance handles the GET /api/v1/balance endpoint
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	clientID, ok := h.parseQueryID(c)
	if !ok {
		return
	}

	result, err := h.ledger.GetBalance(c.Request.Context(), clientID)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		BalanceDateTime: result.Timestamp,
		ClientBalance:   result.Balance,
	})
}

// ListTransactions handles the GET /api/v1/transactions endpoint
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	clientID, ok := h.parseQueryID(c)
	if !ok {
		return
	}

	transactions, err := h.ledger.ListTransactions(c.Request.Context(), clientID)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	items := make([]dto.TransactionHistoryItem, 0, len(transactions))
	for _, t := range transactions {
		item := dto.TransactionHistoryItem{
			ID:       t.ID.String(),
			ClientID: t.ClientID.String(),
			DateTime: t.Timestamp,
			Amount:   t.Amount,
			Kind:     string(t.Kind()),
			Reverted: t.IsReverted(),
		}
		if t.RevertTransactionID != nil {
			revertID := t.RevertTransactionID.String()
			item.RevertTransactionID = &revertID
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, dto.TransactionHistoryResponse{
		ClientID:     clientID.String(),
		Transactions: items,
	})
}

// parseIdentifiers parses the transaction and client ids from a request
// body, writing a 400 response on failure.
func (h *LedgerHandler) parseIdentifiers(c *gin.Context, rawID, rawClientID string) (uuid.UUID, uuid.UUID, bool) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidIdentifier,
			Message: "Invalid transaction id",
		})
		return uuid.Nil, uuid.Nil, false
	}

	clientID, err := uuid.Parse(rawClientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidIdentifier,
			Message: "Invalid client id",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return id, clientID, true
}

// parseQueryID parses the required "id" query parameter, writing a 400
// response on failure.
func (h *LedgerHandler) parseQueryID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Query("id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidIdentifier,
			Message: "Missing id query parameter",
		})
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidIdentifier,
			Message: "Invalid id query parameter",
		})
		return uuid.Nil, false
	}

	return id, true
}

// respondWithError maps a domain error to an HTTP status and error body.
func (h *LedgerHandler) respondWithError(c *gin.Context, err error) {
	code := domainerr.ErrorCode(err)

	switch {
	case domainerr.IsInsufficientFundsError(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    code,
			Message: "Insufficient funds",
		})
	case domainerr.IsNotFoundError(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    code,
			Message: "Transaction not found",
		})
	case errors.Is(err, domainerr.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    code,
			Message: "Amount must be greater than zero",
		})
	case errors.Is(err, domainerr.ErrDuplicateTransaction):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Code:    code,
			Message: "Transaction already exists",
		})
	case domainerr.IsConflictError(err):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Code:    code,
			Message: "Operation conflicted with a concurrent request, retry",
		})
	case domainerr.IsCorruptionError(err):
		h.logger.Error("Ledger consistency violation", map[string]any{
			"error": err.Error(),
			"path":  c.FullPath(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    code,
			Message: "Internal server error",
		})
	default:
		h.logger.Error("Unhandled ledger error", map[string]any{
			"error": err.Error(),
			"path":  c.FullPath(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.CodeInternalServer,
			Message: "Internal server error",
		})
	}
}
