package ledger

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/transaction-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transaction-ledger/internal/domain/port/usecase"
)

// Service implements the ledger engine over the repository port. All shared
// mutable state lives in the store; the engine holds no locks, queues or
// caches of its own and delegates isolation entirely to the UnitOfWork.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// Compile-time check that Service satisfies the use case port
var _ usecase.LedgerUseCase = (*Service)(nil)

// NewService creates a new ledger engine
func NewService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// runAtomically executes work inside one atomic unit. On any failure raised
// inside work, all staged writes are discarded before the failure propagates;
// on success the writes are durably committed before returning. The work
// callback receives a repository bound to the unit.
func (s *Service) runAtomically(
	ctx context.Context,
	work func(txCtx context.Context, repo persistence.TransactionRepository) error,
) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin atomic unit: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back atomic unit", map[string]any{
				"error": rbErr.Error(),
			})
		}
	}()

	if err := work(txCtx, s.uow.Transactions(txCtx)); err != nil {
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return fmt.Errorf("failed to commit atomic unit: %w", err)
	}
	committed = true
	return nil
}
