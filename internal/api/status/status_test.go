package status

import (
	"context"
	"encoding/json"
	dto "lucky_dice/internal/api/dto/status"
	"lucky_dice/internal/model"
	"lucky_dice/internal/repository/memory_repo"
	"lucky_dice/internal/repository/stats_repo"
	statusServ "lucky_dice/internal/service/status"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func newRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/session", h.Session)
	r.Get("/history", h.History)
	r.Get("/stats", h.Stats)
	return r
}

func TestStatusEndpoints(t *testing.T) {
	ctx := context.Background()
	ledger := memory_repo.NewLedgerRepository()
	stats := stats_repo.NewStatsRepository(10)
	serv := statusServ.NewStatusService(ledger, stats)
	router := newRouter(NewHandler(HandlerDeps{Serv: serv}))

	// до начала сессии
	for _, path := range []string{"/session", "/history"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET %s before attach: code = %d, want 404", path, rec.Code)
		}
	}

	session := &model.Session{
		ID:             "s-1",
		PlayerName:     "ana",
		InitialBalance: decimal.NewFromInt(100),
		Balance:        decimal.NewFromInt(100),
		CreatedAt:      time.Now(),
	}
	if err := ledger.CreateSession(ctx, session); err != nil {
		t.Fatal(err)
	}
	round := &model.RoundResult{
		Record: model.WagerRecord{
			ID:      "r-1",
			Bet:     model.Bet{Kind: model.BetHigh},
			Outcome: model.Outcome{6, 6},
			Won:     true,
		},
		Stake:        decimal.NewFromInt(50),
		Payout:       decimal.NewFromInt(100),
		JackpotBonus: decimal.NewFromInt(30),
		Jackpot:      true,
		Balance:      decimal.NewFromInt(180),
	}
	if err := ledger.UpdateBalance(ctx, "s-1", round.Balance); err != nil {
		t.Fatal(err)
	}
	if err := ledger.SaveRound(ctx, "s-1", round); err != nil {
		t.Fatal(err)
	}
	stats.UpdateState(50, 100, true, true)
	serv.Attach("s-1")

	t.Run("session", func(t *testing.T) {
		var got dto.SessionResponse
		get(t, router, "/session", &got)
		if got.PlayerName != "ana" || got.Balance != "180" || got.InitialBalance != "100" {
			t.Errorf("session = %+v", got)
		}
	})

	t.Run("history", func(t *testing.T) {
		var got dto.HistoryResponse
		get(t, router, "/history", &got)
		if len(got.Rounds) != 1 {
			t.Fatalf("rounds = %d, want 1", len(got.Rounds))
		}
		r := got.Rounds[0]
		if r.Bet != "Alto" || r.Dice != [2]int{6, 6} || !r.Won || !r.Jackpot || r.JackpotBonus != "30" {
			t.Errorf("round = %+v", r)
		}
	})

	t.Run("stats", func(t *testing.T) {
		var got dto.StatsResponse
		get(t, router, "/stats", &got)
		if got.TotalRounds != 1 || got.Jackpots != 1 || got.RTP != 200 {
			t.Errorf("stats = %+v", got)
		}
	})
}

func TestUnknownSession(t *testing.T) {
	serv := statusServ.NewStatusService(memory_repo.NewLedgerRepository(), stats_repo.NewStatsRepository(0))
	serv.Attach("missing")
	router := newRouter(NewHandler(HandlerDeps{Serv: serv}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/session", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", rec.Code)
	}
}

func get(t *testing.T, h http.Handler, path string, out any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s: code = %d, body %s", path, rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
}
