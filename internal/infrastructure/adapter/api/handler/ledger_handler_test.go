package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/transaction-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/transaction-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/transaction-ledger/internal/infrastructure/adapter/api/dto"
	coremocks "github.com/amirhossein-jamali/transaction-ledger/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/transaction-ledger/mocks/port/usecase"
)

var testNow = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

func setupHandlerTest(t *testing.T) (*usecasemocks.MockLedgerUseCase, *gin.Engine) {
	gin.SetMode(gin.TestMode)

	mockLedger := usecasemocks.NewMockLedgerUseCase(t)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(testNow).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	h := NewLedgerHandler(mockLedger, mockTime, mockLogger)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/credit", h.Credit)
	v1.POST("/debit", h.Debit)
	v1.POST("/revert", h.Revert)
	v1.GET("/balance", h.GetBalance)
	v1.GET("/transactions", h.ListTransactions)

	return mockLedger, router
}

func entryBody(id, clientID uuid.UUID, dateTime time.Time, amount string) string {
	return fmt.Sprintf(`{"id":%q,"clientId":%q,"dateTime":%q,"amount":%s}`,
		id, clientID, dateTime.Format(time.RFC3339), amount)
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreditEndpoint(t *testing.T) {
	id := uuid.New()
	clientID := uuid.New()
	requestTime := testNow.Add(-time.Hour)

	t.Run("Successful credit", func(t *testing.T) {
		mockLedger, router := setupHandlerTest(t)
		mockLedger.EXPECT().
			Credit(mock.Anything, id, clientID, mock.Anything, mock.MatchedBy(func(amount decimal.Decimal) bool {
				return amount.Equal(decimal.NewFromInt(100))
			})).
			Return(&usecase.OperationResult{Timestamp: requestTime, Balance: decimal.NewFromInt(150)}, nil).
			Once()

		w := doRequest(router, http.MethodPost, "/api/v1/credit", entryBody(id, clientID, requestTime, "100"))

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.TransactionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.InsertDateTime.Equal(requestTime))
		assert.True(t, resp.ClientBalance.Equal(decimal.NewFromInt(150)))
	})

	t.Run("Malformed body", func(t *testing.T) {
		_, router := setupHandlerTest(t)

		w := doRequest(router, http.MethodPost, "/api/v1/credit", `{"id":"not-a-uuid"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeInvalidIdentifier, resp.Code)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		_, router := setupHandlerTest(t)

		w := doRequest(router, http.MethodPost, "/api/v1/credit", entryBody(id, clientID, requestTime, "0"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeInvalidAmount, resp.Code)
	})

	t.Run("Negative amount", func(t *testing.T) {
		_, router := setupHandlerTest(t)

		w := doRequest(router, http.MethodPost, "/api/v1/credit", entryBody(id, clientID, requestTime, "-5"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeInvalidAmount, resp.Code)
	})

	t.Run("Timestamp in the future", func(t *testing.T) {
		_, router := setupHandlerTest(t)

		future := testNow.Add(time.Hour)
		w := doRequest(router, http.MethodPost, "/api/v1/credit", entryBody(id, clientID, future, "100"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeTimestampInFuture, resp.Code)
	})

	t.Run("Engine failure maps to 500", func(t *testing.T) {
		mockLedger, router := setupHandlerTest(t)
		mockLedger.EXPECT().
			Credit(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.ErrDatabaseConnection).
			Once()

		w := doRequest(router, http.MethodPost, "/api/v1/credit", entryBody(id, clientID, requestTime, "100"))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeInternalServer, resp.Code)
	})
}

func TestDebitEndpoint(t *testing.T) {
	id := uuid.New()
	clientID := uuid.New()
	requestTime := testNow.Add(-time.Hour)

	t.Run("Successful debit", func(t *testing.T) {
		mockLedger, router := setupHandlerTest(t)
		mockLedger.EXPECT().
			Debit(mock.Anything, id, clientID, mock.Anything, mock.MatchedBy(func(amount decimal.Decimal) bool {
				return amount.Equal(decimal.NewFromInt(40))
			})).
			Return(&usecase.OperationResult{Timestamp: requestTime, Balance: decimal.NewFromInt(60)}, nil).
			Once()

		w := doRequest(router, http.MethodPost, "/api/v1/debit", entryBody(id, clientID, requestTime, "40"))

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.TransactionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.ClientBalance.Equal(decimal.NewFromInt(60)))
	})

	t.Run("Insufficient funds maps to 400", func(t *testing.T) {
		mockLedger, router := setupHandlerTest(t)
		mockLedger.EXPECT().
			Debit(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.NewInsufficientFundsError(clientID, decimal.NewFromInt(40), decimal.NewFromInt(10))).
			Once()

		w := doRequest(router, http.MethodPost, "/api/v1/debit", entryBody(id, clientID, requestTime, "40"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeInsufficientFunds, resp.Code)
		assert.Equal(t, "Insufficient funds", resp.Message)
	})

	t.Run("Conflict maps to 409", func(t *testing.T) {
		mockLedger, router := setupHandlerTest(t)
		mockLedger.EXPECT().
			Debit(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errs.ErrConflict).
			Once()

		w := doRequest(router, http.MethodPost, "/api/v1/debit", entryBody(id, clientID, requestTime, "40"))

		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestRevertEndpoint(t *testing.T) {
	transactionID := uuid.New()

	t.Run("Successful revert", func(t *testing.T) {
		mockLedger, router := setupHandlerTest(t)
		mockLedger.EXPECT().
			Revert(mock.Anything, transactionID).
			Return(&usecase.OperationResult{Timestamp: testNow, Balance: decimal.NewFromInt(100)}, nil).
			Once()

		w := doRequest(router, http.MethodPost, "/api/v1/revert?id="+transactionID.String(), "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.RevertResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.RevertDateTime.Equal(testNow))
		assert.True(t, resp.ClientBalance.Equal(decimal.NewFromInt(100)))
	})

	t.Run("Missing id parameter", func(t *testing.T) {
		_, router := setupHandlerTest(t)

		w := doRequest(router, http.MethodPost, "/api/v1/revert", "")

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeInvalidIdentifier, resp.Code)
	})

	t.Run("Malformed id parameter", func(t *testing.T) {
		_, router := setupHandlerTest(t)

		w := doRequest(router, http.MethodPost, "/api/v1/revert?id=not-a-uuid", "")

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown transaction maps to 400", func(t *testing.T) {
		mockLedger, router := setupHandlerTest(t)
		mockLedger.EXPECT().
			Revert(mock.Anything, transactionID).
			Return(nil, errs.ErrTransactionNotFound).
			Once()

		w := doRequest(router, http.MethodPost, "/api/v1/revert?id="+transactionID.String(), "")

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeTransactionNotFound, resp.Code)
		assert.Equal(t, "Transaction not found", resp.Message)
	})

	t.Run("Corrupted ledger maps to 500", func(t *testing.T) {
		mockLedger, router := setupHandlerTest(t)
		mockLedger.EXPECT().
			Revert(mock.Anything, transactionID).
			Return(nil, errs.NewRevertConsistencyError(transactionID, uuid.New())).
			Once()

		w := doRequest(router, http.MethodPost, "/api/v1/revert?id="+transactionID.String(), "")

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeLedgerCorrupted, resp.Code)
	})
}

func TestGetBalanceEndpoint(t *testing.T) {
	clientID := uuid.New()

	t.Run("Successful balance query", func(t *testing.T) {
		mockLedger, router := setupHandlerTest(t)
		mockLedger.EXPECT().
			GetBalance(mock.Anything, clientID).
			Return(&usecase.OperationResult{Timestamp: testNow, Balance: decimal.NewFromFloat(42.5)}, nil).
			Once()

		w := doRequest(router, http.MethodGet, "/api/v1/balance?id="+clientID.String(), "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.BalanceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.BalanceDateTime.Equal(testNow))
		assert.True(t, resp.ClientBalance.Equal(decimal.NewFromFloat(42.5)))
	})

	t.Run("Missing id parameter", func(t *testing.T) {
		_, router := setupHandlerTest(t)

		w := doRequest(router, http.MethodGet, "/api/v1/balance", "")

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListTransactionsEndpoint(t *testing.T) {
	clientID := uuid.New()
	ts := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Returns the client history", func(t *testing.T) {
		revertID := uuid.New()
		credit := entity.NewCredit(uuid.New(), clientID, ts, decimal.NewFromInt(100))
		credit.RevertTransactionID = &revertID
		debit := entity.NewDebit(uuid.New(), clientID, ts.Add(time.Hour), decimal.NewFromInt(40))

		mockLedger, router := setupHandlerTest(t)
		mockLedger.EXPECT().
			ListTransactions(mock.Anything, clientID).
			Return([]*entity.Transaction{credit, debit}, nil).
			Once()

		w := doRequest(router, http.MethodGet, "/api/v1/transactions?id="+clientID.String(), "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.TransactionHistoryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, clientID.String(), resp.ClientID)
		require.Len(t, resp.Transactions, 2)

		assert.Equal(t, string(entity.KindCredit), resp.Transactions[0].Kind)
		assert.True(t, resp.Transactions[0].Reverted)
		require.NotNil(t, resp.Transactions[0].RevertTransactionID)
		assert.Equal(t, revertID.String(), *resp.Transactions[0].RevertTransactionID)

		assert.Equal(t, string(entity.KindDebit), resp.Transactions[1].Kind)
		assert.False(t, resp.Transactions[1].Reverted)
		assert.Nil(t, resp.Transactions[1].RevertTransactionID)
	})

	t.Run("Empty history", func(t *testing.T) {
		mockLedger, router := setupHandlerTest(t)
		mockLedger.EXPECT().
			ListTransactions(mock.Anything, clientID).
			Return([]*entity.Transaction{}, nil).
			Once()

		w := doRequest(router, http.MethodGet, "/api/v1/transactions?id="+clientID.String(), "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.TransactionHistoryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Transactions)
	})
}
