package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/transaction-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/transaction-ledger/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/transaction-ledger/mocks/port/persistence"
)

func TestDebit(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.New()
	clientID := uuid.New()

	t.Run("Successful debit", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().Transactions(mock.Anything).Return(mockRepo).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, errs.ErrTransactionNotFound).Once()
		mockRepo.EXPECT().SumAmount(mock.Anything, clientID).Return(decimal.NewFromInt(100), nil).Once()
		mockRepo.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.ID == id &&
				tx.ClientID == clientID &&
				tx.Amount.Equal(decimal.NewFromInt(-40)) // stored negated
		})).Return(nil).Once()
		mockRepo.EXPECT().SumAmount(mock.Anything, clientID).Return(decimal.NewFromInt(60), nil).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		result, err := service.Debit(ctx, id, clientID, fixedTime, decimal.NewFromInt(40))

		require.NoError(t, err)
		assert.Equal(t, fixedTime, result.Timestamp)
		assert.True(t, result.Balance.Equal(decimal.NewFromInt(60)))
	})

	t.Run("Debit of the exact balance is allowed", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().Transactions(mock.Anything).Return(mockRepo).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, errs.ErrTransactionNotFound).Once()
		mockRepo.EXPECT().SumAmount(mock.Anything, clientID).Return(decimal.NewFromInt(40), nil).Once()
		mockRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil).Once()
		mockRepo.EXPECT().SumAmount(mock.Anything, clientID).Return(decimal.Zero, nil).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		result, err := service.Debit(ctx, id, clientID, fixedTime, decimal.NewFromInt(40))

		require.NoError(t, err)
		assert.True(t, result.Balance.IsZero())
	})

	t.Run("Insufficient funds rejects and rolls back", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
		mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().Transactions(mock.Anything).Return(mockRepo).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		mockRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, errs.ErrTransactionNotFound).Once()
		mockRepo.EXPECT().SumAmount(mock.Anything, clientID).Return(decimal.NewFromInt(30), nil).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		result, err := service.Debit(ctx, id, clientID, fixedTime, decimal.NewFromInt(40))

		require.Error(t, err)
		assert.True(t, errs.IsInsufficientFundsError(err))
		assert.Nil(t, result)

		var rich *errs.InsufficientFundsError
		require.True(t, errors.As(err, &rich))
		assert.Equal(t, clientID, rich.ClientID)
		assert.True(t, rich.Requested.Equal(decimal.NewFromInt(40)))
		assert.True(t, rich.Balance.Equal(decimal.NewFromInt(30)))
	})

	t.Run("Duplicate id replays without a balance check", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

		existingTime := fixedTime.Add(-time.Hour)
		existing := entity.NewDebit(id, clientID, existingTime, decimal.NewFromInt(40))

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().Transactions(mock.Anything).Return(mockRepo).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		mockRepo.EXPECT().FindByID(mock.Anything, id).Return(existing, nil).Once()
		mockRepo.EXPECT().SumAmountAsOf(mock.Anything, clientID, existingTime).
			Return(decimal.NewFromInt(60), nil).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		result, err := service.Debit(ctx, id, clientID, fixedTime, decimal.NewFromInt(40))

		require.NoError(t, err)
		assert.Equal(t, existingTime, result.Timestamp)
		assert.True(t, result.Balance.Equal(decimal.NewFromInt(60)))
	})

	t.Run("Balance query failure rolls back", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().Transactions(mock.Anything).Return(mockRepo).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		mockRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, errs.ErrTransactionNotFound).Once()
		mockRepo.EXPECT().SumAmount(mock.Anything, clientID).Return(decimal.Zero, errs.ErrDatabaseConnection).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		result, err := service.Debit(ctx, id, clientID, fixedTime, decimal.NewFromInt(40))

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrDatabaseConnection))
		assert.Nil(t, result)
	})

	t.Run("Commit failure surfaces", func(t *testing.T) {
		mockUow := persistencemocks.NewMockUnitOfWork(t)
		mockRepo := persistencemocks.NewMockTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

		mockUow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		mockUow.EXPECT().Transactions(mock.Anything).Return(mockRepo).Once()
		mockUow.EXPECT().Commit(mock.Anything).Return(errs.ErrConflict).Once()
		mockUow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		mockRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, errs.ErrTransactionNotFound).Once()
		mockRepo.EXPECT().SumAmount(mock.Anything, clientID).Return(decimal.NewFromInt(100), nil).Once()
		mockRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil).Once()
		mockRepo.EXPECT().SumAmount(mock.Anything, clientID).Return(decimal.NewFromInt(60), nil).Once()

		service := NewService(mockUow, mockTime, mockLogger)

		result, err := service.Debit(ctx, id, clientID, fixedTime, decimal.NewFromInt(40))

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrConflict))
		assert.Nil(t, result)
	})
}
