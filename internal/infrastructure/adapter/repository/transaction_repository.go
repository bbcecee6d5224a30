package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/transaction-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-ledger/internal/infrastructure/adapter/model"
)

// TransactionRepository implements the persistence port using GORM. When the
// *gorm.DB it wraps is an open transaction, all operations run inside that
// atomic unit.
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a ledger entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:                  transaction.ID,
		ClientID:            transaction.ClientID,
		Timestamp:           transaction.Timestamp,
		Amount:              transaction.Amount,
		RevertTransactionID: transaction.RevertTransactionID,
	}
}

// modelToEntity converts a database model to a ledger entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:                  m.ID,
		ClientID:            m.ClientID,
		Timestamp:           m.Timestamp,
		Amount:              m.Amount,
		RevertTransactionID: m.RevertTransactionID,
	}
}

// FindByID retrieves a transaction by its id
func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&transactionModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"transaction_id": id.String(),
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&transactionModel), nil
}

// Insert stages a new ledger entry
func (r *TransactionRepository) Insert(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate transaction detected", map[string]any{
				"transaction_id": transaction.ID.String(),
				"client_id":      transaction.ClientID.String(),
			})
			return errs.ErrDuplicateTransaction
		}
		r.logger.Error("Failed to insert transaction", map[string]any{
			"transaction_id": transaction.ID.String(),
			"client_id":      transaction.ClientID.String(),
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Debug("Transaction inserted", map[string]any{
		"transaction_id": transaction.ID.String(),
		"client_id":      transaction.ClientID.String(),
		"amount":         transaction.Amount.String(),
	})
	return nil
}

// SumAmount returns the client's balance as of now
func (r *TransactionRepository) SumAmount(ctx context.Context, clientID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	row := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("client_id = ?", clientID).
		Select("COALESCE(SUM(amount), 0)").
		Row()

	if err := row.Scan(&sum); err != nil {
		r.logger.Error("Failed to sum client amounts", map[string]any{
			"client_id": clientID.String(),
			"error":     err.Error(),
		})
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return sum, nil
}

// SumAmountAsOf returns the client's balance at the given cutoff time
func (r *TransactionRepository) SumAmountAsOf(ctx context.Context, clientID uuid.UUID, cutoff time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	row := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("client_id = ? AND timestamp <= ?", clientID, cutoff).
		Select("COALESCE(SUM(amount), 0)").
		Row()

	if err := row.Scan(&sum); err != nil {
		r.logger.Error("Failed to sum client amounts up to cutoff", map[string]any{
			"client_id": clientID.String(),
			"cutoff":    cutoff,
			"error":     err.Error(),
		})
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return sum, nil
}

// MarkReverted sets the compensating back-reference on the original entry.
// The guarded WHERE clause makes the mutation single-shot: once the reference
// is present it is never overwritten. A missing original is a no-op since the
// caller confirmed existence inside the same atomic unit.
func (r *TransactionRepository) MarkReverted(ctx context.Context, originalID, compensatingID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("id = ? AND revert_transaction_id IS NULL", originalID).
		Update("revert_transaction_id", compensatingID)

	if result.Error != nil {
		r.logger.Error("Failed to mark transaction as reverted", map[string]any{
			"transaction_id":        originalID.String(),
			"revert_transaction_id": compensatingID.String(),
			"error":                 result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Transaction missing or already reverted, back-reference left unchanged", map[string]any{
			"transaction_id": originalID.String(),
		})
	}
	return nil
}

// ListByClient returns all entries of a client ordered by timestamp
func (r *TransactionRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("timestamp").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list client transactions", map[string]any{
			"client_id": clientID.String(),
			"error":     result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	entries := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		entries = append(entries, r.modelToEntity(&models[i]))
	}
	return entries, nil
}
