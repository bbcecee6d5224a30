package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/transaction-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/transaction-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transaction-ledger/internal/domain/port/usecase"
)

// Credit records a balance increase for the client.
//
// Everything runs inside one atomic unit. A retried id is answered from the
// existing entry: the balance is computed as of that entry's timestamp, not
// "now", so every replay of the same request produces the same response.
// Exactly one entry per id is ever stored; when two submissions race, the
// unit's isolation picks a single winner and the loser retries into the
// duplicate branch.
func (s *Service) Credit(
	ctx context.Context,
	id, clientID uuid.UUID,
	timestamp time.Time,
	amount decimal.Decimal,
) (*usecase.OperationResult, error) {
	s.logger.Info("Processing credit transaction", map[string]any{
		"transaction_id": id.String(),
		"client_id":      clientID.String(),
		"amount":         amount.String(),
	})

	var result *usecase.OperationResult
	err := s.runAtomically(ctx, func(txCtx context.Context, repo persistence.TransactionRepository) error {
		existing, err := repo.FindByID(txCtx, id)
		if err != nil && !errors.Is(err, errs.ErrTransactionNotFound) {
			return fmt.Errorf("failed to look up transaction %s: %w", id, err)
		}

		if existing != nil {
			s.logger.Info("Transaction already exists, returning existing entry", map[string]any{
				"transaction_id": id.String(),
			})
			balance, err := repo.SumAmountAsOf(txCtx, clientID, existing.Timestamp)
			if err != nil {
				return err
			}
			result = &usecase.OperationResult{Timestamp: existing.Timestamp, Balance: balance}
			return nil
		}

		entry := entity.NewCredit(id, clientID, timestamp, amount)
		if err := repo.Insert(txCtx, entry); err != nil {
			return err
		}

		balance, err := repo.SumAmount(txCtx, clientID)
		if err != nil {
			return err
		}
		result = &usecase.OperationResult{Timestamp: entry.Timestamp, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Credit transaction processed", map[string]any{
		"transaction_id": id.String(),
		"client_id":      clientID.String(),
		"balance":        result.Balance.String(),
	})
	return result, nil
}
