package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the service configuration, loaded from the environment.
// The solver knobs exist so the iteration policy and the initial rate
// guess are deployment-tunable instead of baked into call sites.
type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// RedisAddr enables the Redis solve cache. Empty keeps caching
	// in-process.
	RedisAddr string `env:"REDIS_ADDR"`

	SolverTolerance     float64 `env:"SOLVER_TOLERANCE" envDefault:"1e-7"`
	SolverMaxIterations int     `env:"SOLVER_MAX_ITERATIONS" envDefault:"100"`
	SolverInitialGuess  float64 `env:"SOLVER_INITIAL_GUESS" envDefault:"0.1"`

	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
