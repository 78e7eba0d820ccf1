package service

import (
	"context"
	"errors"
	"lucky_dice/internal/model"

	"github.com/shopspring/decimal"
)

var (
	// ErrStakeOutOfBounds stake outside [min, max]; nothing was changed
	ErrStakeOutOfBounds = errors.New("stake out of bounds")
	// ErrInvalidTarget specific-number target is not a face of the die
	ErrInvalidTarget = errors.New("target number out of range")
	// ErrLedger the round was played but could not be written to the ledger
	ErrLedger = errors.New("ledger write failed")
	// ErrNoSession no console session has started yet
	ErrNoSession = errors.New("no active session")
)

type GameService interface {
	// Play разыгрывает один раунд. On ErrLedger the returned result is still valid.
	Play(ctx context.Context, stake decimal.Decimal, bet model.Bet) (*model.RoundResult, error)
	History() []model.WagerRecord
	Balance() decimal.Decimal
	Limits() (minStake, maxStake decimal.Decimal)
	DieFaces() int
	SessionID() string
	Stats() model.Stats
}

// StatusService read-only view of the running session for the HTTP API.
// It never touches the live player, only the ledger and stats.
type StatusService interface {
	Session(ctx context.Context) (*model.Session, error)
	Rounds(ctx context.Context) ([]model.RoundResult, error)
	Stats() model.Stats
}
