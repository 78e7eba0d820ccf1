package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInsufficientFunds stake is bigger than the current balance
var ErrInsufficientFunds = errors.New("insufficient funds for stake")

// Player игрок: имя, баланс и история ставок
type Player struct {
	name    string
	balance decimal.Decimal
	history []WagerRecord
}

func NewPlayer(name string, balance decimal.Decimal) *Player {
	return &Player{
		name:    name,
		balance: balance,
		history: make([]WagerRecord, 0),
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Balance() decimal.Decimal {
	return p.balance
}

// PlaceStake - списывает ставку с баланса.
// Either the whole amount is deducted or nothing is.
func (p *Player) PlaceStake(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.GreaterThan(p.balance) {
		return decimal.Zero, ErrInsufficientFunds
	}
	p.balance = p.balance.Sub(amount)
	return amount, nil
}

// Credit - начисляет сумму на баланс без каких-либо проверок
func (p *Player) Credit(amount decimal.Decimal) {
	p.balance = p.balance.Add(amount)
}

// RecordHistory - добавляет запись в историю и возвращает её
func (p *Player) RecordHistory(bet Bet, outcome Outcome, won bool) WagerRecord {
	rec := WagerRecord{
		ID:        uuid.New().String(),
		Bet:       bet,
		Outcome:   outcome,
		Won:       won,
		CreatedAt: time.Now(),
	}
	p.history = append(p.history, rec)
	return rec
}

// History - копия истории в порядке добавления
func (p *Player) History() []WagerRecord {
	out := make([]WagerRecord, len(p.history))
	copy(out, p.history)
	return out
}
