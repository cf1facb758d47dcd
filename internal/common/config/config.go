package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process configuration, read from the environment
type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	StaticDir  string `env:"STATIC_DIR" envDefault:"./public"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	RedisAddr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
	RedisKeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"ceelo:"`

	AdminPassword   string        `env:"ADMIN_PASSWORD"`
	AdminSessionTTL time.Duration `env:"ADMIN_SESSION_TTL" envDefault:"12h"`

	// MaxDraws caps rejection sampling per roll
	MaxDraws int   `env:"CEELO_MAX_DRAWS" envDefault:"20000"`
	DiceSeed int64 `env:"DICE_SEED" envDefault:"0"`

	// InitialFriends seeds the roster when none is stored yet
	InitialFriends []string `env:"INITIAL_FRIENDS" envSeparator:","`

	DiscordToken         string `env:"DISCORD_TOKEN"`
	DiscordApplicationID string `env:"DISCORD_APPLICATION_ID"`
	DiscordGuildID       string `env:"DISCORD_GUILD_ID"`
}

// Load reads an optional .env file and then the environment
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required values and normalizes the list fields
func (c *Config) Validate() error {
	if c.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD is required")
	}
	if c.AdminSessionTTL <= 0 {
		return errors.New("ADMIN_SESSION_TTL must be positive")
	}
	if c.MaxDraws <= 0 {
		return errors.New("CEELO_MAX_DRAWS must be positive")
	}

	friends := make([]string, 0, len(c.InitialFriends))
	for _, f := range c.InitialFriends {
		if f = strings.TrimSpace(f); f != "" {
			friends = append(friends, f)
		}
	}
	c.InitialFriends = friends

	return nil
}

// DiscordEnabled reports whether the Discord transport should start
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}
