package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/transaction-ledger/internal/domain/entity"
)

// OperationResult is what every ledger operation hands back: the timestamp the
// response is effective at and the client balance as of that timestamp.
type OperationResult struct {
	Timestamp time.Time
	Balance   decimal.Decimal
}

// LedgerUseCase defines the ledger engine's operations as consumed by the API
// adapter. Credit and Debit are idempotent by transaction id; Revert is
// idempotent by the reverted transaction's id.
type LedgerUseCase interface {
	// Credit records a balance increase. Replaying an id returns the balance
	// as of the existing entry's timestamp, making retries deterministic.
	Credit(ctx context.Context, id, clientID uuid.UUID, timestamp time.Time, amount decimal.Decimal) (*OperationResult, error)

	// Debit records a balance decrease, rejecting any debit that would drive
	// the balance negative. Same duplicate semantics as Credit.
	Debit(ctx context.Context, id, clientID uuid.UUID, timestamp time.Time, amount decimal.Decimal) (*OperationResult, error)

	// Revert creates the compensating entry for an existing transaction, or
	// returns the already-created compensating entry's timestamp and balance
	// when the transaction was reverted before.
	Revert(ctx context.Context, transactionID uuid.UUID) (*OperationResult, error)

	// GetBalance returns the client's balance as of now.
	GetBalance(ctx context.Context, clientID uuid.UUID) (*OperationResult, error)

	// ListTransactions returns the client's ledger entries ordered by timestamp.
	ListTransactions(ctx context.Context, clientID uuid.UUID) ([]*entity.Transaction, error)
}
