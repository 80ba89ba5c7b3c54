package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const DefaultAPIBaseURL = "https://popcue-api-812411253957.us-central1.run.app"

// Config holds runtime settings for the admin console.
//
// RequestTimeout of zero leaves HTTP requests without a client-side deadline.
type Config struct {
	APIBaseURL     string        `env:"API_URL" validate:"required,url"`
	StatePath      string        `env:"STATE_DB" validate:"required"`
	NoticeTTL      time.Duration `env:"NOTICE_TTL" validate:"gt=0"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`
	LogLevel       string        `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	ColorMode      string        `env:"COLOR" validate:"oneof=auto always never"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.StatePath = "admin_state.db"
	c.NoticeTTL = 3 * time.Second
	c.RequestTimeout = 0
	c.LogLevel = "warn"
	c.ColorMode = "auto"
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// LoadConfig builds a Config by applying defaults, JSON, environment and
// then flags from args (typically os.Args[1:]). Later sources win.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
