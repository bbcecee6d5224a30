package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/transaction-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/transaction-ledger/internal/domain/port/usecase"
)

// GetBalance returns the client's balance as of now together with the
// timestamp used for the read. The query is read-only and runs without an
// atomic unit; the repository guarantees the aggregate reflects a single
// coherent snapshot.
func (s *Service) GetBalance(ctx context.Context, clientID uuid.UUID) (*usecase.OperationResult, error) {
	now := s.timeProvider.Now().UTC()

	balance, err := s.uow.Transactions(ctx).SumAmount(ctx, clientID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Balance query completed", map[string]any{
		"client_id": clientID.String(),
		"balance":   balance.String(),
	})
	return &usecase.OperationResult{Timestamp: now, Balance: balance}, nil
}

// ListTransactions returns all ledger entries of a client ordered by
// timestamp. Read-only, same snapshot semantics as GetBalance.
func (s *Service) ListTransactions(ctx context.Context, clientID uuid.UUID) ([]*entity.Transaction, error) {
	entries, err := s.uow.Transactions(ctx).ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Transaction history retrieved", map[string]any{
		"client_id": clientID.String(),
		"count":     len(entries),
	})
	return entries, nil
}
