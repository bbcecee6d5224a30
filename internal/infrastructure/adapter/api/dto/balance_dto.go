package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceResponse represents the API response for a client's balance
type BalanceResponse struct {
	BalanceDateTime time.Time       `json:"balanceDateTime"`
	ClientBalance   decimal.Decimal `json:"clientBalance"`
}
