package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind classifies a ledger entry. It is derived from the sign of the stored
// amount, never persisted as its own column.
type Kind string

const (
	// KindCredit marks entries that increase the client balance (amount >= 0).
	KindCredit Kind = "credit"
	// KindDebit marks entries that decrease the client balance (amount < 0).
	KindDebit Kind = "debit"
)

// Transaction is a single entry in a client's append-only ledger.
//
// Credits store the requested amount as-is; debits store its negation, so the
// balance of a client is always the plain sum of amounts. An entry is never
// mutated after insertion except for RevertTransactionID, which is set exactly
// once when the entry is compensated.
type Transaction struct {
	ID                  uuid.UUID       // Unique identifier, doubles as the idempotency key
	ClientID            uuid.UUID       // Client whose balance the entry affects
	Timestamp           time.Time       // Point in time the entry is logically effective
	Amount              decimal.Decimal // Signed amount; sign encodes the kind
	RevertTransactionID *uuid.UUID      // Back-reference to the compensating entry, if any
}

// NewCredit builds a credit entry for the given amount.
// Amount is expected to be positive; the caller validates before reaching here.
func NewCredit(id, clientID uuid.UUID, timestamp time.Time, amount decimal.Decimal) *Transaction {
	return &Transaction{
		ID:        id,
		ClientID:  clientID,
		Timestamp: timestamp,
		Amount:    amount,
	}
}

// NewDebit builds a debit entry. The requested magnitude is stored negated so
// that summing amounts yields the balance without branching on kind.
func NewDebit(id, clientID uuid.UUID, timestamp time.Time, amount decimal.Decimal) *Transaction {
	return &Transaction{
		ID:        id,
		ClientID:  clientID,
		Timestamp: timestamp,
		Amount:    amount.Neg(),
	}
}

// Compensating builds the entry that reverses this one: same client, a fresh
// id, the given effective time and the negated amount. The new entry starts
// out not reverted.
func (t *Transaction) Compensating(id uuid.UUID, now time.Time) *Transaction {
	return &Transaction{
		ID:        id,
		ClientID:  t.ClientID,
		Timestamp: now,
		Amount:    t.Amount.Neg(),
	}
}

// Kind derives the entry classification from the amount's sign.
func (t *Transaction) Kind() Kind {
	if t.Amount.IsNegative() {
		return KindDebit
	}
	return KindCredit
}

// IsReverted reports whether a compensating entry exists for this one.
// The presence of the back-reference is the sole source of truth; there is no
// separate flag that could drift out of sync.
func (t *Transaction) IsReverted() bool {
	return t.RevertTransactionID != nil
}
