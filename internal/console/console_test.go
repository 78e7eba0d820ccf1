package console

import (
	"context"
	"errors"
	"lucky_dice/internal/config/env"
	"lucky_dice/internal/model"
	"lucky_dice/internal/repository/memory_repo"
	"lucky_dice/internal/repository/stats_repo"
	"lucky_dice/internal/service"
	"lucky_dice/internal/service/lucky"
	"strings"
	"testing"
)

type constRoller int

func (r constRoller) Roll() int { return int(r) }

func fixedGame(d1, d2 int) GameFactory {
	return func(ctx context.Context, player *model.Player) (service.GameService, error) {
		return lucky.NewGameService(ctx, lucky.Deps{
			Config:    env.DefaultGameConfig(),
			Player:    player,
			Ledger:    memory_repo.NewLedgerRepository(),
			Stats:     stats_repo.NewStatsRepository(0),
			TxManager: memory_repo.NewTxManager(),
			Dice:      [2]lucky.Roller{constRoller(d1), constRoller(d2)},
		})
	}
}

func runScript(t *testing.T, script string, d1, d2 int) string {
	t.Helper()
	var out strings.Builder
	c := New(strings.NewReader(script), &out, fixedGame(d1, d2), nil)
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestConsoleSessions(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		dice     [2]int
		contains []string
		excludes []string
	}{
		{
			name:   "doubles win then history then exit",
			script: "ana\n100\n1\n50\nDobles\n2\n3\n",
			dice:   [2]int{4, 4},
			contains: []string{
				"Resultado: (4, 4)",
				"Saldo actual: 150.00",
				"Apuesta: Dobles, Resultado: (4, 4), Ganó: Sí",
				"¡Hasta luego!",
			},
			excludes: []string{"Jackpot"},
		},
		{
			name:     "jackpot on high",
			script:   "ana\n100\n1\n50\nalto\n3\n",
			dice:     [2]int{6, 6},
			contains: []string{"¡Jackpot ganado! Bonificación de 30.00 agregada.", "Saldo actual: 180.00"},
		},
		{
			name:     "specific number asks target up front",
			script:   "ana\n100\n1\n10\nNúmero Específico\n3\n2\n3\n",
			dice:     [2]int{3, 5},
			contains: []string{"Ingresa el número específico (1-6): ", "Apuesta: Número Específico (3), Resultado: (3, 5), Ganó: Sí"},
		},
		{
			name:     "target out of range",
			script:   "ana\n100\n1\n10\nDobles\n1\n10\nNúmero Específico\n9\n2\n3\n",
			dice:     [2]int{1, 2},
			contains: []string{"El número debe estar entre 1 y 6.", "Ganó: No"},
		},
		{
			name:     "stake out of bounds",
			script:   "ana\n100\n1\n5\nAlto\n2\n3\n",
			dice:     [2]int{6, 6},
			contains: []string{"fuera de los límites permitidos", "No hay apuestas registradas."},
		},
		{
			name:     "insufficient funds",
			script:   "ana\n20\n1\n50\nBajo\n3\n",
			dice:     [2]int{1, 1},
			contains: []string{"Saldo insuficiente para la apuesta."},
		},
		{
			name:     "unknown bet loses",
			script:   "ana\n100\n1\n10\nImpar\n2\n3\n",
			dice:     [2]int{6, 6},
			contains: []string{"Perdiste.", "Saldo actual: 90.00", "Apuesta: Impar, Resultado: (6, 6), Ganó: No"},
		},
		{
			name:     "bad balance is asked again",
			script:   "ana\nmucho\n-5\n100\n3\n",
			contains: []string{"Saldo no válido."},
		},
		{
			name:     "invalid menu option",
			script:   "ana\n100\n9\n\n3\n",
			contains: []string{"Opción no válida. Por favor, elige nuevamente."},
		},
		{
			name:     "eof exits",
			script:   "ana\n100\n1\n50\nDobles\n",
			dice:     [2]int{2, 2},
			contains: []string{"Saldo actual: 150.00", "¡Hasta luego!"},
		},
		{
			name:     "eof at stake prompt says goodbye",
			script:   "ana\n100\n1\n",
			contains: []string{"Ingresa la cantidad a apostar: ", "¡Hasta luego!"},
		},
		{
			name:     "eof at bet type prompt says goodbye",
			script:   "ana\n100\n1\n10\n",
			contains: []string{"Ingresa el tipo de apuesta", "¡Hasta luego!"},
		},
		{
			name:     "eof at target prompt says goodbye",
			script:   "ana\n100\n1\n10\nNúmero Específico\n",
			contains: []string{"Ingresa el número específico (1-6): ", "¡Hasta luego!"},
			excludes: []string{"Resultado:"},
		},
		{
			name:     "stats",
			script:   "ana\n100\n1\n10\nDobles\n4\n3\n",
			dice:     [2]int{2, 2},
			contains: []string{"Rondas: 1 (ganadas 1, perdidas 0, jackpots 0)", "RTP: 200.00%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d1, d2 := tt.dice[0], tt.dice[1]
			if d1 == 0 {
				d1, d2 = 1, 2
			}
			out := runScript(t, tt.script, d1, d2)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q\n%s", want, out)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(out, bad) {
					t.Errorf("output should not contain %q\n%s", bad, out)
				}
			}
		})
	}
}

func TestEOFBeforePlayer(t *testing.T) {
	called := false
	factory := func(context.Context, *model.Player) (service.GameService, error) {
		called = true
		return nil, errors.New("unreachable")
	}
	var out strings.Builder
	if err := New(strings.NewReader("ana\n"), &out, factory, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if called {
		t.Error("game must not start without a balance")
	}
}

func TestFactoryError(t *testing.T) {
	factory := func(context.Context, *model.Player) (service.GameService, error) {
		return nil, errors.New("db down")
	}
	var out strings.Builder
	err := New(strings.NewReader("ana\n100\n"), &out, factory, nil).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "db down") {
		t.Fatalf("Run error = %v", err)
	}
}

func TestFormatRecord(t *testing.T) {
	rec := model.WagerRecord{
		Bet:     model.Bet{Kind: model.BetHigh},
		Outcome: model.Outcome{6, 2},
		Won:     true,
	}
	if got, want := FormatRecord(rec), "Apuesta: Alto, Resultado: (6, 2), Ganó: Sí"; got != want {
		t.Errorf("FormatRecord = %q, want %q", got, want)
	}
}

func TestFarewellPrintedOnce(t *testing.T) {
	for _, script := range []string{"ana\n100\n3\n", "ana\n100\n", "ana\n100\n1\n10\n"} {
		out := runScript(t, script, 1, 2)
		if n := strings.Count(out, "¡Hasta luego!"); n != 1 {
			t.Errorf("script %q: farewell printed %d times\n%s", script, n, out)
		}
	}
}
