package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process configuration, loaded from the environment
type Config struct {
	// Token authenticates the bot with Discord. The process refuses to
	// start without it.
	Token string `env:"DISCORD_TOKEN,required"`

	// ApplicationID is used for slash-command registration; falls back to
	// the bot user when empty
	ApplicationID string `env:"APPLICATION_ID"`

	// GuildID scopes command registration to one guild during development
	GuildID string `env:"GUILD_ID"`

	// DatabasePath is the SQLite file backing the session store
	DatabasePath string `env:"DATABASE_PATH" envDefault:"coworkbot.db"`

	// LogoutTimeout is how long logout waits for a task description
	LogoutTimeout time.Duration `env:"LOGOUT_TIMEOUT" envDefault:"60s"`

	// Debug switches the logger to development output
	Debug bool `env:"DEBUG" envDefault:"false"`
}

// Load reads an optional .env file and parses configuration from the
// environment. A missing .env is fine; deployments set variables directly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &cfg, nil
}
