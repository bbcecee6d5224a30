package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/transaction-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/transaction-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transaction-ledger/internal/domain/port/usecase"
)

// Revert creates a compensating entry for an existing transaction.
//
// An already-reverted transaction is answered from its compensating entry,
// making repeated reverts idempotent: the response is the compensating entry's
// timestamp and the balance as of that timestamp. A reverted back-reference
// pointing at a missing entry is corrupted state and surfaces as a distinct,
// non-retryable failure. Compensating entries are ordinary ledger entries and
// may themselves be reverted through the same path.
func (s *Service) Revert(ctx context.Context, transactionID uuid.UUID) (*usecase.OperationResult, error) {
	s.logger.Info("Processing revert", map[string]any{
		"transaction_id": transactionID.String(),
	})

	var result *usecase.OperationResult
	err := s.runAtomically(ctx, func(txCtx context.Context, repo persistence.TransactionRepository) error {
		existing, err := repo.FindByID(txCtx, transactionID)
		if err != nil {
			if errors.Is(err, errs.ErrTransactionNotFound) {
				s.logger.Warn("Transaction not found for revert", map[string]any{
					"transaction_id": transactionID.String(),
				})
			}
			return err
		}

		if existing.IsReverted() {
			compensating, err := repo.FindByID(txCtx, *existing.RevertTransactionID)
			if err != nil {
				if errors.Is(err, errs.ErrTransactionNotFound) {
					return errs.NewRevertConsistencyError(existing.ID, *existing.RevertTransactionID)
				}
				return fmt.Errorf("failed to load compensating entry: %w", err)
			}

			s.logger.Info("Transaction already reverted, returning existing compensating entry", map[string]any{
				"transaction_id":        transactionID.String(),
				"revert_transaction_id": compensating.ID.String(),
			})
			balance, err := repo.SumAmountAsOf(txCtx, compensating.ClientID, compensating.Timestamp)
			if err != nil {
				return err
			}
			result = &usecase.OperationResult{Timestamp: compensating.Timestamp, Balance: balance}
			return nil
		}

		now := s.timeProvider.Now().UTC()
		compensating := existing.Compensating(uuid.New(), now)
		if err := repo.Insert(txCtx, compensating); err != nil {
			return err
		}
		if err := repo.MarkReverted(txCtx, existing.ID, compensating.ID); err != nil {
			return err
		}

		balance, err := repo.SumAmount(txCtx, existing.ClientID)
		if err != nil {
			return err
		}
		result = &usecase.OperationResult{Timestamp: now, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Revert processed", map[string]any{
		"transaction_id": transactionID.String(),
		"balance":        result.Balance.String(),
	})
	return result, nil
}
