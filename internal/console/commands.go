package console

import (
	"context"
	"errors"
	"lucky_dice/internal/model"
	"lucky_dice/internal/service"
	"strconv"

	"github.com/shopspring/decimal"
)

// placeBet спрашивает ставку, тип и (для Número Específico) число, затем играет раунд
func placeBet(ctx context.Context, st *State) error {
	raw, err := st.prompt("Ingresa la cantidad a apostar: ")
	if err != nil {
		return err
	}
	stake, err := decimal.NewFromString(raw)
	if err != nil {
		st.println("Cantidad no válida.")
		return nil
	}

	raw, err = st.prompt("Ingresa el tipo de apuesta (Alto, Bajo, Número Específico, Dobles): ")
	if err != nil {
		return err
	}
	bet := model.ParseBet(raw)

	if bet.Kind == model.BetSpecificNumber {
		raw, err = st.prompt("Ingresa el número específico (1-" + strconv.Itoa(st.game.DieFaces()) + "): ")
		if err != nil {
			return err
		}
		target, err := strconv.Atoi(raw)
		if err != nil {
			st.println("Número no válido.")
			return nil
		}
		bet.Target = target
	}

	res, err := st.game.Play(ctx, stake, bet)
	switch {
	case errors.Is(err, service.ErrStakeOutOfBounds):
		minStake, maxStake := st.game.Limits()
		st.printf("La apuesta está fuera de los límites permitidos (%s-%s).\n", minStake, maxStake)
		return nil
	case errors.Is(err, service.ErrInvalidTarget):
		st.printf("El número debe estar entre 1 y %d.\n", st.game.DieFaces())
		return nil
	case errors.Is(err, model.ErrInsufficientFunds):
		st.println("Saldo insuficiente para la apuesta.")
		return nil
	case errors.Is(err, service.ErrLedger):
		// раунд сыгран, просто не записан
		st.println("Aviso: no se pudo guardar la ronda.")
	case err != nil:
		return err
	}

	if res.Jackpot {
		st.printf("¡Jackpot ganado! Bonificación de %s agregada.\n", res.JackpotBonus.StringFixed(2))
	}
	st.printf("Resultado: %s\n", res.Record.Outcome)
	if res.Record.Won {
		st.println("¡Ganaste!")
	} else {
		st.println("Perdiste.")
	}
	st.printf("Saldo actual: %s\n", res.Balance.StringFixed(2))
	return nil
}

func showHistory(_ context.Context, st *State) error {
	history := st.game.History()
	if len(history) == 0 {
		st.println("No hay apuestas registradas.")
		return nil
	}
	for _, rec := range history {
		st.println(FormatRecord(rec))
	}
	return nil
}

func showStats(_ context.Context, st *State) error {
	s := st.game.Stats()
	st.printf("Rondas: %d (ganadas %d, perdidas %d, jackpots %d)\n", s.TotalRounds, s.Wins, s.Losses, s.Jackpots)
	st.printf("Apostado: %.2f, Pagado: %.2f\n", s.TotalStaked, s.TotalPaid)
	st.printf("RTP: %.2f%% (últimas %d rondas: %.2f%%)\n", s.CurrentRTP, s.WindowSize, s.WindowRTP)
	st.printf("Saldo actual: %s\n", st.game.Balance().StringFixed(2))
	return nil
}

// FormatRecord строка истории: "Apuesta: Alto, Resultado: (6, 2), Ganó: Sí"
func FormatRecord(rec model.WagerRecord) string {
	won := "No"
	if rec.Won {
		won = "Sí"
	}
	return "Apuesta: " + rec.Bet.String() + ", Resultado: " + rec.Outcome.String() + ", Ganó: " + won
}
