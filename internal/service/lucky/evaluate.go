package lucky

import "lucky_dice/internal/model"

// highThreshold сумма, которую должна превысить ставка "Alto"
const highThreshold = 7

// Evaluate решает, выиграла ли ставка. Order of the dice never matters.
// BetUnknown always loses.
func Evaluate(bet model.Bet, o model.Outcome) bool {
	switch bet.Kind {
	case model.BetHigh:
		return o.Sum() > highThreshold
	case model.BetLow:
		return o.Sum() <= highThreshold
	case model.BetSpecificNumber:
		return o[0] == bet.Target || o[1] == bet.Target
	case model.BetDoubles:
		return o[0] == o[1]
	default:
		return false
	}
}

// IsJackpot both dice show face
func IsJackpot(o model.Outcome, face int) bool {
	return o[0] == face && o[1] == face
}
