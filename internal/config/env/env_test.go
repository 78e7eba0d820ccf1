package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	if !cfg.MinStake().Equal(decimal.NewFromInt(10)) {
		t.Errorf("MinStake = %s", cfg.MinStake())
	}
	if !cfg.MaxStake().Equal(decimal.NewFromInt(500)) {
		t.Errorf("MaxStake = %s", cfg.MaxStake())
	}
	if !cfg.PayoutMultiplier().Equal(decimal.NewFromInt(2)) {
		t.Errorf("PayoutMultiplier = %s", cfg.PayoutMultiplier())
	}
	if !cfg.JackpotFraction().Equal(decimal.RequireFromString("0.2")) {
		t.Errorf("JackpotFraction = %s", cfg.JackpotFraction())
	}
	if cfg.DieFaces() != 6 || cfg.JackpotFace() != 6 {
		t.Errorf("faces = %d, jackpot face = %d", cfg.DieFaces(), cfg.JackpotFace())
	}
}

func TestGameConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("game:\n  min_stake: 5\n  max_stake: 50\n  seed: 99\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewGameConfigFromYAML(path)
	if err != nil {
		t.Fatalf("NewGameConfigFromYAML: %v", err)
	}

	if !cfg.MinStake().Equal(decimal.NewFromInt(5)) || !cfg.MaxStake().Equal(decimal.NewFromInt(50)) {
		t.Errorf("stake bounds = %s..%s", cfg.MinStake(), cfg.MaxStake())
	}
	if cfg.Seed() != 99 {
		t.Errorf("Seed = %d", cfg.Seed())
	}
	// untouched keys keep defaults
	if !cfg.JackpotFraction().Equal(decimal.RequireFromString("0.2")) {
		t.Errorf("JackpotFraction = %s", cfg.JackpotFraction())
	}
}

func TestGameConfigMissingFile(t *testing.T) {
	cfg, err := NewGameConfigFromYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should yield defaults, got %v", err)
	}
	if !cfg.MinStake().Equal(decimal.NewFromInt(10)) {
		t.Errorf("MinStake = %s", cfg.MinStake())
	}
}

func TestGameConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"max below min", "game:\n  min_stake: 100\n  max_stake: 10\n"},
		{"negative fraction", "game:\n  jackpot_fraction: -0.1\n"},
		{"jackpot face too big", "game:\n  jackpot_face: 7\n"},
		{"broken yaml", "game: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := NewGameConfigFromYAML(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestStorageConfig(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "SQLite")
	cfg, err := NewStorageConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Driver() != DriverSQLite {
		t.Errorf("Driver = %q", cfg.Driver())
	}

	t.Setenv("STORAGE_DRIVER", "mongo")
	if _, err := NewStorageConfig(); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestPGConfigRequiresDSN(t *testing.T) {
	t.Setenv("PG_DSN", "")
	if _, err := NewPGConfig(); err == nil {
		t.Error("expected error without PG_DSN")
	}

	t.Setenv("PG_DSN", "postgres://localhost/dice")
	cfg, err := NewPGConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DSN() != "postgres://localhost/dice" {
		t.Errorf("DSN = %q", cfg.DSN())
	}
}

func TestHTTPConfig(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", "")
	cfg, err := NewHTTPConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Enabled() {
		t.Error("empty address should disable the API")
	}
}
