package persistence

import (
	"context"
)

// UnitOfWork scopes repository operations to one atomic, isolated unit.
// All staged writes either commit together or are discarded together; the
// isolation level must be strong enough that a balance check and a subsequent
// insert for the same client are never interleaved with another writer's
// insert for that client.
type UnitOfWork interface {
	// Begin starts a new atomic unit and returns a context bound to it
	Begin(ctx context.Context) (context.Context, error)

	// Commit durably commits all writes staged in the given unit's context
	Commit(ctx context.Context) error

	// Rollback discards all writes staged in the given unit's context
	Rollback(ctx context.Context) error

	// Transactions returns a repository bound to the unit in the given
	// context, or one reading committed state when no unit is open
	Transactions(ctx context.Context) TransactionRepository
}
