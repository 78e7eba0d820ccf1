package converter

import (
	"lucky_dice/internal/model"
	"testing"

	"github.com/shopspring/decimal"
)

func TestToHistoryResponseBetNames(t *testing.T) {
	rounds := []model.RoundResult{
		{Record: model.WagerRecord{Bet: model.Bet{Kind: model.BetHigh}}, Stake: decimal.NewFromInt(10)},
		{Record: model.WagerRecord{Bet: model.Bet{Kind: model.BetSpecificNumber, Target: 4}}, Stake: decimal.NewFromInt(10)},
		{Record: model.WagerRecord{Bet: model.ParseBet("Impar")}, Stake: decimal.NewFromInt(10)},
	}

	got := ToHistoryResponse(rounds).Rounds
	if len(got) != 3 {
		t.Fatalf("rounds = %d, want 3", len(got))
	}

	want := []struct {
		bet    string
		target int
	}{
		{"Alto", 0},
		{"Número Específico", 4},
		{"Impar", 0},
	}
	for i, w := range want {
		if got[i].Bet != w.bet || got[i].Target != w.target {
			t.Errorf("round %d = %q/%d, want %q/%d", i, got[i].Bet, got[i].Target, w.bet, w.target)
		}
	}
}
