package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const EnvPrefix = "POPCUE_"

// dotenvFiles are loaded when present; a later file overrides an earlier
// one. Variables already set in the process environment are never
// overwritten.
var dotenvFiles = []string{".env", ".env.local"}

// loadDotenv reads files last to first, since godotenv.Load keeps the first
// value it sees for a key.
func loadDotenv(files []string) error {
	existing := make([]string, 0, len(files))
	for i := len(files) - 1; i >= 0; i-- {
		if _, err := os.Stat(files[i]); err == nil {
			existing = append(existing, files[i])
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// parseEnv overlays cfg with POPCUE_* variables. Unset variables keep the
// value from earlier layers.
func parseEnv(cfg *Config) error {
	if err := loadDotenv(dotenvFiles); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
