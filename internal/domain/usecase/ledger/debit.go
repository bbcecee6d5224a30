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

// Debit records a balance decrease for the client.
//
// The balance check and the insert happen inside the same atomic unit, whose
// isolation guarantees they are never interleaved with another writer's insert
// for the same client. Two racing debits therefore cannot both pass the check
// and overdraw the account: the second unit observes the first one's entry or
// fails with a serialization conflict and is retried by the caller.
func (s *Service) Debit(
	ctx context.Context,
	id, clientID uuid.UUID,
	timestamp time.Time,
	amount decimal.Decimal,
) (*usecase.OperationResult, error) {
	s.logger.Info("Processing debit transaction", map[string]any{
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

		balance, err := repo.SumAmount(txCtx, clientID)
		if err != nil {
			return err
		}
		if balance.LessThan(amount) {
			s.logger.Warn("Insufficient funds for debit", map[string]any{
				"transaction_id": id.String(),
				"client_id":      clientID.String(),
				"requested":      amount.String(),
				"balance":        balance.String(),
			})
			return errs.NewInsufficientFundsError(clientID, amount, balance)
		}

		entry := entity.NewDebit(id, clientID, timestamp, amount)
		if err := repo.Insert(txCtx, entry); err != nil {
			return err
		}

		updated, err := repo.SumAmount(txCtx, clientID)
		if err != nil {
			return err
		}
		result = &usecase.OperationResult{Timestamp: entry.Timestamp, Balance: updated}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Debit transaction processed", map[string]any{
		"transaction_id": id.String(),
		"client_id":      clientID.String(),
		"balance":        result.Balance.String(),
	})
	return result, nil
}
