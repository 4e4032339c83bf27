package boundary

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	goguard "github.com/reoring/goguard"
	"github.com/reoring/goguard/i18n"
)

// Config holds the environment-driven settings of a Guard.
type Config struct {
	// Language selects the message catalog ("en" or "ja").
	Language string `env:"GOGUARD_LANGUAGE" envDefault:"en"`
	// LogLevel is the level rejection events are logged at.
	LogLevel string `env:"GOGUARD_LOG_LEVEL" envDefault:"debug"`
	// MetricsNamespace prefixes the Prometheus metric names.
	MetricsNamespace string `env:"GOGUARD_METRICS_NAMESPACE" envDefault:"goguard"`
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("boundary: parse env config: %w", err)
	}
	return cfg, nil
}

// NewFromConfig builds a Guard from cfg. It switches the process-wide message
// language; explicit opts are applied after the config-derived ones.
func NewFromConfig(v goguard.Validator, cfg Config, opts ...Option) (*Guard, error) {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("boundary: log level %q: %w", cfg.LogLevel, err)
	}
	i18n.SetLanguage(cfg.Language)
	base := []Option{WithLevel(lvl)}
	if cfg.MetricsNamespace != "" {
		base = append(base, WithNamespace(cfg.MetricsNamespace))
	}
	return New(v, append(base, opts...)...)
}
