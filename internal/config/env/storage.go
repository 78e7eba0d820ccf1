package env

import (
	"fmt"
	"lucky_dice/internal/config"
	"strings"

	envparse "github.com/caarlos0/env/v11"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type storageEnv struct {
	Driver     string `env:"STORAGE_DRIVER" envDefault:"memory"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"lucky_dice.db"`
}

type storageConfig struct {
	driver string
}

type sqliteConfig struct {
	path string
}

// NewStorageConfig читает STORAGE_DRIVER (memory, sqlite, postgres)
func NewStorageConfig() (config.StorageConfig, error) {
	var e storageEnv
	if err := envparse.Parse(&e); err != nil {
		return nil, err
	}

	driver := strings.ToLower(strings.TrimSpace(e.Driver))
	switch driver {
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", e.Driver)
	}

	return &storageConfig{driver: driver}, nil
}

func NewSQLiteConfig() (config.SQLiteConfig, error) {
	var e storageEnv
	if err := envparse.Parse(&e); err != nil {
		return nil, err
	}
	return &sqliteConfig{path: e.SQLitePath}, nil
}

func (cfg *storageConfig) Driver() string {
	return cfg.driver
}

func (cfg *sqliteConfig) Path() string {
	return cfg.path
}
