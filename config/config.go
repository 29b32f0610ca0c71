package config

import (
	"fmt"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds everything the gateway needs at startup.
type Configuration struct {
	Address     string `env:"ADDRESS" envDefault:":8080"`
	APIBaseURL  string `env:"API_BASE_URL" envDefault:"http://localhost:5000/api"`
	JWTSecret   string `env:"JWT_SECRET,required"`
	SessionDB   string `env:"SESSION_DB" envDefault:"./data/session.db"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPath   string `env:"LOG_PATH" envDefault:""` // empty = stdout only
	LogMaxMB  int    `env:"LOG_MAX_SIZE" envDefault:"100"`
	LogMaxAge int    `env:"LOG_MAX_AGE" envDefault:"7"`
}

// Load reads .env (when present) and parses the environment.
func Load() (*Configuration, error) {
	_ = godotenv.Load()

	cfg := &Configuration{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
