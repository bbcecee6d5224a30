package ledger

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/transaction-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transaction-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/transaction-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/transaction-ledger/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/transaction-ledger/mocks/port/core"
)

// memoryLedger is an in-memory UnitOfWork plus TransactionRepository used to
// exercise the engine's concurrency guarantees end to end. Begin takes a
// global lock held until Commit or Rollback, which gives each atomic unit the
// same exclusivity a serializable database transaction would.
type memoryLedger struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entity.Transaction

	staged      []uuid.UUID
	stagedMarks []uuid.UUID
}

func newMemoryLedger() *memoryLedger {
	return &memoryLedger{entries: make(map[uuid.UUID]*entity.Transaction)}
}

func (l *memoryLedger) Begin(ctx context.Context) (context.Context, error) {
	l.mu.Lock()
	l.staged = nil
	l.stagedMarks = nil
	return ctx, nil
}

func (l *memoryLedger) Commit(_ context.Context) error {
	l.staged = nil
	l.stagedMarks = nil
	l.mu.Unlock()
	return nil
}

func (l *memoryLedger) Rollback(_ context.Context) error {
	for _, id := range l.staged {
		delete(l.entries, id)
	}
	for _, id := range l.stagedMarks {
		if e, ok := l.entries[id]; ok {
			e.RevertTransactionID = nil
		}
	}
	l.staged = nil
	l.stagedMarks = nil
	l.mu.Unlock()
	return nil
}

func (l *memoryLedger) Transactions(_ context.Context) persistence.TransactionRepository {
	return l
}

func (l *memoryLedger) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	e, ok := l.entries[id]
	if !ok {
		return nil, errs.ErrTransactionNotFound
	}
	return e, nil
}

func (l *memoryLedger) Insert(_ context.Context, tx *entity.Transaction) error {
	if _, ok := l.entries[tx.ID]; ok {
		return errs.ErrDuplicateTransaction
	}
	l.entries[tx.ID] = tx
	l.staged = append(l.staged, tx.ID)
	return nil
}

func (l *memoryLedger) SumAmount(_ context.Context, clientID uuid.UUID) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range l.entries {
		if e.ClientID == clientID {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

func (l *memoryLedger) SumAmountAsOf(_ context.Context, clientID uuid.UUID, cutoff time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, e := range l.entries {
		if e.ClientID == clientID && !e.Timestamp.After(cutoff) {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

func (l *memoryLedger) MarkReverted(_ context.Context, originalID, compensatingID uuid.UUID) error {
	e, ok := l.entries[originalID]
	if !ok || e.RevertTransactionID != nil {
		return nil
	}
	id := compensatingID
	e.RevertTransactionID = &id
	l.stagedMarks = append(l.stagedMarks, originalID)
	return nil
}

func (l *memoryLedger) ListByClient(_ context.Context, clientID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, e := range l.entries {
		if e.ClientID == clientID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func newTestService(t *testing.T, store *memoryLedger) *Service {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)).Maybe()

	return NewService(store, mockTime, logger.NewNoopLogger())
}

func TestConcurrentDebitsNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	store := newMemoryLedger()
	service := newTestService(t, store)

	clientID := uuid.New()
	seedTime := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := service.Credit(ctx, uuid.New(), clientID, seedTime, decimal.NewFromInt(55))
	require.NoError(t, err)

	const workers = 20
	debit := decimal.NewFromInt(10)

	var wg sync.WaitGroup
	results := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = service.Debit(ctx, uuid.New(), clientID, seedTime.Add(time.Minute), debit)
		}(i)
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errs.IsInsufficientFundsError(err):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Only 5 debits of 10 fit into a balance of 55.
	assert.Equal(t, 5, succeeded)
	assert.Equal(t, workers-5, rejected)

	balance, err := store.SumAmount(ctx, clientID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(5)), "final balance %s", balance)
}

func TestConcurrentSameIDWritesSingleEntry(t *testing.T) {
	ctx := context.Background()
	store := newMemoryLedger()
	service := newTestService(t, store)

	clientID := uuid.New()
	transactionID := uuid.New()
	ts := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	const workers = 10
	var wg sync.WaitGroup
	results := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = service.Credit(ctx, transactionID, clientID, ts, decimal.NewFromInt(100))
		}(i)
	}
	wg.Wait()

	for _, err := range results {
		require.NoError(t, err)
	}

	entries, err := store.ListByClient(ctx, clientID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	balance, err := store.SumAmount(ctx, clientID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(100)))
}

func TestRevertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newMemoryLedger()
	service := newTestService(t, store)

	clientID := uuid.New()
	ts := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := service.Credit(ctx, uuid.New(), clientID, ts, decimal.NewFromInt(100))
	require.NoError(t, err)

	debitID := uuid.New()
	_, err = service.Debit(ctx, debitID, clientID, ts.Add(time.Minute), decimal.NewFromInt(40))
	require.NoError(t, err)

	first, err := service.Revert(ctx, debitID)
	require.NoError(t, err)
	assert.True(t, first.Balance.Equal(decimal.NewFromInt(100)))

	// Replaying the revert answers from the compensating entry.
	second, err := service.Revert(ctx, debitID)
	require.NoError(t, err)
	assert.Equal(t, first.Timestamp, second.Timestamp)
	assert.True(t, first.Balance.Equal(second.Balance))

	entries, err := store.ListByClient(ctx, clientID)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestLedgerLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newMemoryLedger()
	service := newTestService(t, store)

	clientID := uuid.New()
	ts := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	// No entries yet: zero balance, debits rejected.
	balance, err := service.GetBalance(ctx, clientID)
	require.NoError(t, err)
	assert.True(t, balance.Balance.IsZero())

	_, err = service.Debit(ctx, uuid.New(), clientID, ts, decimal.NewFromInt(1))
	require.Error(t, err)
	assert.True(t, errs.IsInsufficientFundsError(err))

	// Credit, partial debit, revert the credit.
	creditID := uuid.New()
	_, err = service.Credit(ctx, creditID, clientID, ts, decimal.NewFromInt(100))
	require.NoError(t, err)

	_, err = service.Debit(ctx, uuid.New(), clientID, ts.Add(time.Minute), decimal.NewFromInt(30))
	require.NoError(t, err)

	result, err := service.Revert(ctx, creditID)
	require.NoError(t, err)
	assert.True(t, result.Balance.Equal(decimal.NewFromInt(-30)),
		"reverting the credit may expose a negative balance: %s", result.Balance)

	entries, err := service.ListTransactions(ctx, clientID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Amount)
	}
	assert.True(t, sum.Equal(result.Balance), "balance is always the plain sum of amounts")
}
