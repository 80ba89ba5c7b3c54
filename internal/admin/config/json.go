package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/popcue/admin-console/internal/flagx"
	"github.com/popcue/admin-console/internal/timex"
)

// JSONConfig is the on-disk shape. Pointers tell an absent key apart from
// an explicit zero.
type JSONConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	StatePath      *string         `json:"state_path"`
	NoticeTTL      *timex.Duration `json:"notice_ttl"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       *string         `json:"log_level"`
	ColorMode      *string         `json:"color"`
}

// parseJSON overlays cfg with the keys present in the file named by
// -c/-config or $POPCUE_CONFIG. No file requested is not an error.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.StatePath != nil {
		cfg.StatePath = *jc.StatePath
	}
	if jc.NoticeTTL != nil {
		cfg.NoticeTTL = jc.NoticeTTL.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.ColorMode != nil {
		cfg.ColorMode = *jc.ColorMode
	}
	return nil
}
