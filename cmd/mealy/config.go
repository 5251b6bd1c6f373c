package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

// Config holds the environment defaults of the persistent flags.
// Flags given on the command line always win.
type Config struct {
	LogLevel string `env:"MEALY_LOG_LEVEL" envDefault:"warn"`
	Debug    bool   `env:"MEALY_DEBUG"`
}

// LoadConfig reads the MEALY_* variables, including those from a .env file in the working directory.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}
	return cfg, nil
}
