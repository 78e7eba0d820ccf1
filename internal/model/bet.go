package model

import (
	"fmt"
	"strings"
)

// BetKind тип ставки
type BetKind int

const (
	BetUnknown BetKind = iota
	BetHigh
	BetLow
	BetSpecificNumber
	BetDoubles
)

func (k BetKind) String() string {
	switch k {
	case BetHigh:
		return "Alto"
	case BetLow:
		return "Bajo"
	case BetSpecificNumber:
		return "Número Específico"
	case BetDoubles:
		return "Dobles"
	default:
		return "Desconocida"
	}
}

// betAliases maps lowercased input to a bet kind. Both the Spanish menu names
// and their English equivalents are accepted.
var betAliases = map[string]BetKind{
	"alto":              BetHigh,
	"high":              BetHigh,
	"bajo":              BetLow,
	"low":               BetLow,
	"número específico": BetSpecificNumber,
	"numero especifico": BetSpecificNumber,
	"specific number":   BetSpecificNumber,
	"dobles":            BetDoubles,
	"doubles":           BetDoubles,
}

// ParseBetKind returns BetUnknown for anything it does not recognise.
func ParseBetKind(s string) BetKind {
	if k, ok := betAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k
	}
	return BetUnknown
}

// Bet is what the player wagers on. Target is used by BetSpecificNumber only.
// Raw keeps the text the player typed for a BetUnknown.
type Bet struct {
	Kind   BetKind
	Target int
	Raw    string
}

// ParseBet ставка из ввода игрока; нераспознанный тип сохраняет исходный текст
func ParseBet(s string) Bet {
	kind := ParseBetKind(s)
	if kind == BetUnknown {
		return Bet{Kind: BetUnknown, Raw: strings.TrimSpace(s)}
	}
	return Bet{Kind: kind}
}

// Name имя типа ставки, для BetUnknown то, что ввёл игрок
func (b Bet) Name() string {
	if b.Kind == BetUnknown && b.Raw != "" {
		return b.Raw
	}
	return b.Kind.String()
}

func (b Bet) String() string {
	if b.Kind == BetSpecificNumber {
		return fmt.Sprintf("%s (%d)", b.Kind, b.Target)
	}
	return b.Name()
}
