package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents the database model for ledger entries.
// The (client_id, timestamp) composite index backs the aggregation queries and
// point-in-time balance reads.
type Transaction struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID            uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_client_timestamp,priority:1"`
	Timestamp           time.Time       `gorm:"not null;index:idx_transactions_client_timestamp,priority:2"`
	Amount              decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	RevertTransactionID *uuid.UUID      `gorm:"type:uuid"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
