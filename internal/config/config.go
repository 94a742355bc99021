package config

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
// Every setting has a default.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Debug("No .env file found, reading from environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Level maps LogLevel onto a log level, defaulting to info.
func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warn("Unknown log level, using info", "level", c.LogLevel)
		return log.InfoLevel
	}
	return level
}

// Rand returns the random source for baseline scores.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
