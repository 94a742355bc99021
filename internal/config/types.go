package config

// Config holds all configuration for the application.
type Config struct {
	DBPath        string `env:"BVTRACKER_DB" envDefault:"bvtracker.db"`
	BindAddr      string `env:"BIND_ADDR" envDefault:"127.0.0.1"`
	Port          string `env:"PORT" envDefault:"8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	TargetAverage int    `env:"TARGET_AVERAGE" envDefault:"457"`
	// Seed fixes the baseline score fabrication. Zero seeds from the clock.
	Seed int64 `env:"SEED" envDefault:"0"`
}

// Addr is the address the HTTP server listens on.
func (c Config) Addr() string {
	return c.BindAddr + ":" + c.Port
}
