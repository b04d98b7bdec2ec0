// internal/config/config.go
//
// Environment-backed configuration for the client.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything tunable from the environment.
// There is deliberately no HTTP timeout knob: requests in flight are not
// abortable, the controller's input lock is the concurrency guard.
type Config struct {
	ServerURL       string `env:"SERVER_URL" envDefault:"http://127.0.0.1:5000"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	QuestionDelayMS int    `env:"QUESTION_DELAY_MS" envDefault:"350"`
}

// Load parses the Config from the process environment.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
