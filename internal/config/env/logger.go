package env

import (
	"lucky_dice/internal/config"

	envparse "github.com/caarlos0/env/v11"
)

type loggerEnv struct {
	Level  string `env:"LOG_LEVEL" envDefault:"warn"`
	Format string `env:"LOG_FORMAT" envDefault:"console"`
}

type loggerConfig struct {
	level  string
	format string
}

func NewLoggerConfig() (config.LoggerConfig, error) {
	var e loggerEnv
	if err := envparse.Parse(&e); err != nil {
		return nil, err
	}
	return &loggerConfig{level: e.Level, format: e.Format}, nil
}

func (cfg *loggerConfig) Level() string {
	return cfg.level
}

func (cfg *loggerConfig) Format() string {
	return cfg.format
}
