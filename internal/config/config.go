package config

import (
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Load подгружает переменные окружения из .env файла
func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GameConfig таблица параметров игры
type GameConfig interface {
	MinStake() decimal.Decimal
	MaxStake() decimal.Decimal
	PayoutMultiplier() decimal.Decimal
	JackpotFraction() decimal.Decimal
	DieFaces() int
	JackpotFace() int
	Seed() int64
	StatsWindow() int
}

type StorageConfig interface {
	Driver() string
}

type PGConfig interface {
	DSN() string
}

type SQLiteConfig interface {
	Path() string
}

type HTTPConfig interface {
	Address() string
	Enabled() bool
}

type LoggerConfig interface {
	Level() string
	Format() string
}
