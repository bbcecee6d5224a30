package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryRequest represents the API request for recording a credit or
// debit. Amount positivity and timestamp bounds are validated by the handler
// before the engine is called.
type LedgerEntryRequest struct {
	ID       string          `json:"id" binding:"required,uuid"`
	ClientID string          `json:"clientId" binding:"required,uuid"`
	DateTime time.Time       `json:"dateTime" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
}

// TransactionResponse represents the API response for a recorded entry
type TransactionResponse struct {
	InsertDateTime time.Time       `json:"insertDateTime"`
	ClientBalance  decimal.Decimal `json:"clientBalance"`
}

// RevertResponse represents the API response for a revert
type RevertResponse struct {
	RevertDateTime time.Time       `json:"revertDateTime"`
	ClientBalance  decimal.Decimal `json:"clientBalance"`
}

// TransactionHistoryItem is one ledger entry in a client's history
type TransactionHistoryItem struct {
	ID                  string          `json:"id"`
	ClientID            string          `json:"clientId"`
	DateTime            time.Time       `json:"dateTime"`
	Amount              decimal.Decimal `json:"amount"`
	Kind                string          `json:"kind"`
	Reverted            bool            `json:"reverted"`
	RevertTransactionID *string         `json:"revertTransactionId,omitempty"`
}

// TransactionHistoryResponse represents the API response for a client's history
type TransactionHistoryResponse struct {
	ClientID     string                   `json:"clientId"`
	Transactions []TransactionHistoryItem `json:"transactions"`
}
