package converter

import (
	dto "lucky_dice/internal/api/dto/status"
	"lucky_dice/internal/model"
)

func ToSessionResponse(s model.Session) dto.SessionResponse {
	return dto.SessionResponse{
		ID:             s.ID,
		PlayerName:     s.PlayerName,
		InitialBalance: s.InitialBalance.String(),
		Balance:        s.Balance.String(),
		CreatedAt:      s.CreatedAt,
	}
}

func ToHistoryResponse(rounds []model.RoundResult) dto.HistoryResponse {
	out := make([]dto.Round, 0, len(rounds))
	for _, r := range rounds {
		out = append(out, toRound(r))
	}
	return dto.HistoryResponse{Rounds: out}
}

func toRound(r model.RoundResult) dto.Round {
	return dto.Round{
		ID:           r.Record.ID,
		Bet:          r.Record.Bet.Name(),
		Target:       r.Record.Bet.Target,
		Dice:         r.Record.Outcome,
		Won:          r.Record.Won,
		Stake:        r.Stake.String(),
		Payout:       r.Payout.String(),
		Jackpot:      r.Jackpot,
		JackpotBonus: r.JackpotBonus.String(),
		Balance:      r.Balance.String(),
		CreatedAt:    r.Record.CreatedAt,
	}
}

func ToStatsResponse(s model.Stats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalRounds: s.TotalRounds,
		Wins:        s.Wins,
		Losses:      s.Losses,
		Jackpots:    s.Jackpots,
		TotalStaked: s.TotalStaked,
		TotalPaid:   s.TotalPaid,
		RTP:         s.CurrentRTP,
		WindowRTP:   s.WindowRTP,
		WindowSize:  s.WindowSize,
	}
}
