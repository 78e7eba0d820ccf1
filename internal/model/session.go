package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Session one console run of one player, as stored in the ledger
type Session struct {
	ID             string
	PlayerName     string
	InitialBalance decimal.Decimal
	Balance        decimal.Decimal
	CreatedAt      time.Time
}
