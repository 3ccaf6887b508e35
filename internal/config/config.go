// Package config loads client configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the CLI.
type Config struct {
	// ServerURL is the base URL of the FitTrack API.
	ServerURL string `env:"FITTRACK_SERVER_URL" envDefault:"http://localhost:8000"`

	// Timeout bounds every HTTP request.
	Timeout time.Duration `env:"FITTRACK_TIMEOUT" envDefault:"30s"`

	// ConfigDir overrides the directory holding persisted session tokens.
	// Empty means the XDG default (~/.config/fittrack).
	ConfigDir string `env:"FITTRACK_CONFIG_DIR"`

	// Debug enables development logging and request tracing.
	Debug bool `env:"FITTRACK_DEBUG"`
}

// Load reads an optional .env file and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return env.ParseAs[Config]()
}
