package env

import (
	"lucky_dice/internal/config"

	envparse "github.com/caarlos0/env/v11"
)

type httpEnv struct {
	Address string `env:"HTTP_ADDRESS"`
}

type httpConfig struct {
	address string
}

// NewHTTPConfig пустой HTTP_ADDRESS отключает status API
func NewHTTPConfig() (config.HTTPConfig, error) {
	var e httpEnv
	if err := envparse.Parse(&e); err != nil {
		return nil, err
	}
	return &httpConfig{address: e.Address}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}

func (cfg *httpConfig) Enabled() bool {
	return cfg.address != ""
}
