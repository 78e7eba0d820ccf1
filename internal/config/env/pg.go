package env

import (
	"fmt"
	"lucky_dice/internal/config"

	envparse "github.com/caarlos0/env/v11"
)

type pgEnv struct {
	DSN string `env:"PG_DSN,required,notEmpty"`
}

type pgConfig struct {
	dsn string
}

func NewPGConfig() (config.PGConfig, error) {
	var e pgEnv
	if err := envparse.Parse(&e); err != nil {
		return nil, fmt.Errorf("pg dsn not found: %w", err)
	}

	return &pgConfig{
		dsn: e.DSN,
	}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}
