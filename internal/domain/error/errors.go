package error

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds    = 4001
	CodeInvalidAmount        = 4002
	CodeInvalidIdentifier    = 4003
	CodeDuplicateTransaction = 4004
	CodeTimestampInFuture    = 4005
	CodeTransactionNotFound  = 4040

	// 5xxx - Server errors
	CodeInternalServer  = 5000
	CodeLedgerCorrupted = 5001
)

// Base error types
var (
	// ErrInsufficientFunds is returned when a debit would drive the client balance negative
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned when the transaction amount is not positive
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidIdentifier is returned when a transaction or client id is empty or malformed
	ErrInvalidIdentifier = errors.New("identifier must be a non-empty UUID")

	// ErrTimestampInFuture is returned when the transaction timestamp lies in the future
	ErrTimestampInFuture = errors.New("timestamp cannot be in the future")

	// ErrDuplicateTransaction is returned when an insert collides with an existing entry id
	ErrDuplicateTransaction = errors.New("transaction with this ID already exists")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrLedgerCorrupted is returned when an entry is marked reverted but its
	// compensating entry is missing; this indicates corrupted state and is not retryable
	ErrLedgerCorrupted = errors.New("ledger is in an inconsistent state")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConflict is returned when concurrent atomic units collided and the
	// operation should be retried by the caller
	ErrConflict = errors.New("operation conflicted with a concurrent request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidIdentifier):
		return CodeInvalidIdentifier
	case errors.Is(err, ErrDuplicateTransaction), errors.Is(err, ErrConflict):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrTimestampInFuture):
		return CodeTimestampInFuture
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrLedgerCorrupted):
		return CodeLedgerCorrupted
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError carries the rejected debit's context for logging and
// API responses.
type InsufficientFundsError struct {
	ClientID  uuid.UUID
	Requested decimal.Decimal
	Balance   decimal.Decimal
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for client %s: requested %s, available %s",
		e.ClientID, e.Requested, e.Balance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"client_id":  e.ClientID.String(),
		"requested":  e.Requested.String(),
		"balance":    e.Balance.String(),
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a detailed insufficient funds error
func NewInsufficientFundsError(clientID uuid.UUID, requested, balance decimal.Decimal) error {
	return &InsufficientFundsError{
		ClientID:  clientID,
		Requested: requested,
		Balance:   balance,
	}
}

// RevertConsistencyError reports an entry whose reverted back-reference points
// at a compensating entry that does not exist. This should never occur under
// correct operation.
type RevertConsistencyError struct {
	TransactionID       uuid.UUID
	RevertTransactionID uuid.UUID
}

// Error implements the error interface
func (e *RevertConsistencyError) Error() string {
	return fmt.Sprintf("transaction %s is marked reverted but compensating entry %s is missing",
		e.TransactionID, e.RevertTransactionID)
}

// Is checks if the target error is an ErrLedgerCorrupted
func (e *RevertConsistencyError) Is(target error) bool {
	return target == ErrLedgerCorrupted
}

// LogFields returns a map of fields for structured logging
func (e *RevertConsistencyError) LogFields() map[string]any {
	return map[string]any{
		"error_type":            "ledger_corrupted",
		"transaction_id":        e.TransactionID.String(),
		"revert_transaction_id": e.RevertTransactionID.String(),
		"error_code":            CodeLedgerCorrupted,
	}
}

// NewRevertConsistencyError creates a new consistency violation error
func NewRevertConsistencyError(transactionID, revertTransactionID uuid.UUID) error {
	return &RevertConsistencyError{
		TransactionID:       transactionID,
		RevertTransactionID: revertTransactionID,
	}
}

// IsInsufficientFundsError checks if the error is an insufficient funds rejection
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsNotFoundError checks if the error is a "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionNotFound)
}

// IsCorruptionError checks if the error signals inconsistent ledger state
func IsCorruptionError(err error) bool {
	return errors.Is(err, ErrLedgerCorrupted)
}

// IsConflictError checks if the error came from colliding concurrent atomic units.
// Such failures are transient: the whole operation may be retried safely because
// every write path is idempotent by transaction id.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrDuplicateTransaction)
}
