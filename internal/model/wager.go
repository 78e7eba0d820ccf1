package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Outcome pair of faces in roll order (die1, die2)
type Outcome [2]int

func (o Outcome) Sum() int {
	return o[0] + o[1]
}

func (o Outcome) String() string {
	return fmt.Sprintf("(%d, %d)", o[0], o[1])
}

// WagerRecord одна запись истории ставок. Never modified after creation.
type WagerRecord struct {
	ID        string
	Bet       Bet
	Outcome   Outcome
	Won       bool
	CreatedAt time.Time
}

// RoundResult everything a completed round produced
type RoundResult struct {
	Record       WagerRecord
	Stake        decimal.Decimal
	Payout       decimal.Decimal // 0 on loss
	JackpotBonus decimal.Decimal // 0 unless Jackpot
	Jackpot      bool
	Balance      decimal.Decimal // balance after the round
}

// TotalReturn payout plus jackpot bonus
func (r RoundResult) TotalReturn() decimal.Decimal {
	return r.Payout.Add(r.JackpotBonus)
}
