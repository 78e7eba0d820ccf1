package env

import (
	"errors"
	"fmt"
	"io/fs"
	"lucky_dice/internal/config"
	"os"

	envparse "github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	defaultMinStake         = 10
	defaultMaxStake         = 500
	defaultPayoutMultiplier = 2
	defaultJackpotFraction  = 0.2
	defaultDieFaces         = 6
	defaultStatsWindow      = 100
)

type gameEnv struct {
	ConfigPath string `env:"GAME_CONFIG" envDefault:"config.yaml"`
}

// gameFile структура config.yaml
type gameFile struct {
	Game struct {
		MinStake         float64 `yaml:"min_stake"`
		MaxStake         float64 `yaml:"max_stake"`
		PayoutMultiplier float64 `yaml:"payout_multiplier"`
		JackpotFraction  float64 `yaml:"jackpot_fraction"`
		DieFaces         int     `yaml:"die_faces"`
		JackpotFace      int     `yaml:"jackpot_face"`
		Seed             int64   `yaml:"seed"`
		StatsWindow      int     `yaml:"stats_window"`
	} `yaml:"game"`
}

type gameConfig struct {
	minStake         decimal.Decimal
	maxStake         decimal.Decimal
	payoutMultiplier decimal.Decimal
	jackpotFraction  decimal.Decimal
	dieFaces         int
	jackpotFace      int
	seed             int64
	statsWindow      int
}

func defaultGameFile() gameFile {
	var f gameFile
	f.Game.MinStake = defaultMinStake
	f.Game.MaxStake = defaultMaxStake
	f.Game.PayoutMultiplier = defaultPayoutMultiplier
	f.Game.JackpotFraction = defaultJackpotFraction
	f.Game.DieFaces = defaultDieFaces
	f.Game.StatsWindow = defaultStatsWindow
	return f
}

// DefaultGameConfig стандартная таблица: ставка 10..500, выплата x2, джекпот 20%
func DefaultGameConfig() config.GameConfig {
	cfg, _ := newGameConfig(defaultGameFile())
	return cfg
}

// NewGameConfig читает путь из GAME_CONFIG и загружает таблицу
func NewGameConfig() (config.GameConfig, error) {
	var e gameEnv
	if err := envparse.Parse(&e); err != nil {
		return nil, err
	}
	return NewGameConfigFromYAML(e.ConfigPath)
}

// NewGameConfigFromYAML загружает таблицу игры из YAML.
// Keys missing from the file keep their defaults; a missing file yields the defaults.
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	f := defaultGameFile()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newGameConfig(f)
		}
		return nil, fmt.Errorf("read game config: %w", err)
	}

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	return newGameConfig(f)
}

func newGameConfig(f gameFile) (config.GameConfig, error) {
	g := f.Game
	if g.JackpotFace == 0 {
		g.JackpotFace = g.DieFaces
	}

	switch {
	case g.MinStake <= 0:
		return nil, errors.New("min_stake must be positive")
	case g.MaxStake < g.MinStake:
		return nil, errors.New("max_stake must not be lower than min_stake")
	case g.PayoutMultiplier <= 0:
		return nil, errors.New("payout_multiplier must be positive")
	case g.JackpotFraction < 0:
		return nil, errors.New("jackpot_fraction must not be negative")
	case g.DieFaces < 1:
		return nil, errors.New("die_faces must be positive")
	case g.JackpotFace < 1 || g.JackpotFace > g.DieFaces:
		return nil, fmt.Errorf("jackpot_face must be within 1..%d", g.DieFaces)
	case g.StatsWindow < 1:
		return nil, errors.New("stats_window must be positive")
	}

	return &gameConfig{
		minStake:         decimal.NewFromFloat(g.MinStake),
		maxStake:         decimal.NewFromFloat(g.MaxStake),
		payoutMultiplier: decimal.NewFromFloat(g.PayoutMultiplier),
		jackpotFraction:  decimal.NewFromFloat(g.JackpotFraction),
		dieFaces:         g.DieFaces,
		jackpotFace:      g.JackpotFace,
		seed:             g.Seed,
		statsWindow:      g.StatsWindow,
	}, nil
}

func (c *gameConfig) MinStake() decimal.Decimal {
	return c.minStake
}

func (c *gameConfig) MaxStake() decimal.Decimal {
	return c.maxStake
}

func (c *gameConfig) PayoutMultiplier() decimal.Decimal {
	return c.payoutMultiplier
}

func (c *gameConfig) JackpotFraction() decimal.Decimal {
	return c.jackpotFraction
}

func (c *gameConfig) DieFaces() int {
	return c.dieFaces
}

func (c *gameConfig) JackpotFace() int {
	return c.jackpotFace
}

func (c *gameConfig) Seed() int64 {
	return c.seed
}

func (c *gameConfig) StatsWindow() int {
	return c.statsWindow
}
