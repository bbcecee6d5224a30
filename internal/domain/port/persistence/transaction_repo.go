package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/transaction-ledger/internal/domain/entity"
)

// TransactionRepository is the narrow set of store operations the ledger
// engine needs. Implementations bound to an open atomic unit (see UnitOfWork)
// see that unit's staged writes; stand-alone implementations read committed
// state at a single coherent snapshot.
type TransactionRepository interface {
	// FindByID retrieves a transaction by its id.
	//
	// Possible errors:
	// - ErrTransactionNotFound: no entry with the given id exists
	// - ErrDatabaseConnection: store access failed
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// Insert stages a new ledger entry. The entry becomes visible to other
	// readers only once the enclosing atomic unit commits.
	//
	// Possible errors:
	// - ErrDuplicateTransaction: an entry with the same id already exists
	// - ErrDatabaseConnection: store access failed
	Insert(ctx context.Context, transaction *entity.Transaction) error

	// SumAmount returns the sum of amounts over all entries of the client,
	// i.e. the client's balance as of now. Zero when no entries exist.
	SumAmount(ctx context.Context, clientID uuid.UUID) (decimal.Decimal, error)

	// SumAmountAsOf returns the sum of amounts over the client's entries with
	// timestamp <= cutoff.
	SumAmountAsOf(ctx context.Context, clientID uuid.UUID, cutoff time.Time) (decimal.Decimal, error)

	// MarkReverted sets the compensating back-reference on the original entry.
	// The reference is set at most once; a missing original is a no-op because
	// the caller has already confirmed existence inside the same atomic unit.
	MarkReverted(ctx context.Context, originalID, compensatingID uuid.UUID) error

	// ListByClient returns all entries of a client ordered by timestamp.
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Transaction, error)
}
