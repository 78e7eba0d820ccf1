package repository

import (
	"context"
	"errors"
	"lucky_dice/internal/model"

	"github.com/shopspring/decimal"
)

// ErrSessionNotFound no session with the given id in the ledger
var ErrSessionNotFound = errors.New("session not found")

// LedgerRepository хранит сессии и сыгранные раунды
type LedgerRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	UpdateBalance(ctx context.Context, sessionID string, balance decimal.Decimal) error

	SaveRound(ctx context.Context, sessionID string, round *model.RoundResult) error
	ListRounds(ctx context.Context, sessionID string) ([]model.RoundResult, error)
}

// StatsRepository статистика раундов (RTP)
type StatsRepository interface {
	UpdateState(stake, paid float64, won, jackpot bool)
	Stats() model.Stats
}

// TxManager runs fn inside a transaction carried by ctx.
// trm.Manager satisfies it for postgres.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
