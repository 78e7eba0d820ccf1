package status

import "time"

type SessionResponse struct {
	ID             string    `json:"id"`
	PlayerName     string    `json:"player_name"`
	InitialBalance string    `json:"initial_balance"` // decimal строкой
	Balance        string    `json:"balance"`         // баланс после последнего раунда
	CreatedAt      time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Rounds []Round `json:"rounds"`
}

type Round struct {
	ID           string    `json:"id"`
	Bet          string    `json:"bet"`    // Alto, Bajo, ...
	Target       int       `json:"target"` // только для Número Específico
	Dice         [2]int    `json:"dice"`
	Won          bool      `json:"won"`
	Stake        string    `json:"stake"`
	Payout       string    `json:"payout"`
	Jackpot      bool      `json:"jackpot"`
	JackpotBonus string    `json:"jackpot_bonus"`
	Balance      string    `json:"balance"`
	CreatedAt    time.Time `json:"created_at"`
}

type StatsResponse struct {
	TotalRounds int     `json:"total_rounds"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Jackpots    int     `json:"jackpots"`
	TotalStaked float64 `json:"total_staked"`
	TotalPaid   float64 `json:"total_paid"`
	RTP         float64 `json:"rtp"`
	WindowRTP   float64 `json:"window_rtp"`
	WindowSize  int     `json:"window_size"`
}
