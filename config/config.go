// Package config loads application configuration from environment variables,
// with an optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Advent of Code source
	AoC AoCConfig

	// Discord bot
	Discord DiscordConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Environment Environment
	Debug       bool

	// Graceful shutdown timeout
	ShutdownTimeout time.Duration
}

// AoCConfig holds Advent of Code leaderboard source settings.
type AoCConfig struct {
	// LeaderboardURL is the full private leaderboard JSON URL.
	LeaderboardURL string

	// SessionCookie is the adventofcode.com session cookie value, passed
	// through as an opaque credential.
	SessionCookie string

	// PollInterval is the minimum time between two leaderboard fetches.
	// AoC asks for at least 15 minutes; values under a minute are clamped
	// by the cache.
	PollInterval time.Duration

	// RequestTimeout is the fetch HTTP timeout.
	RequestTimeout time.Duration
}

// DiscordConfig holds Discord bot settings.
type DiscordConfig struct {
	// Token is the bot token from the Discord developer portal.
	Token string

	// ChannelName gates commands to channels whose name contains it.
	ChannelName string

	// Prefix is the command prefix.
	Prefix string
}

// Load loads configuration from the environment. A .env file in the working
// directory is read first when present, matching how the bot is deployed.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Environment:     Environment(getEnv("APP_ENV", string(EnvDevelopment))),
			Debug:           getEnvBool("APP_DEBUG", false),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		AoC: AoCConfig{
			LeaderboardURL: getEnv("AOC_URL", ""),
			SessionCookie:  getEnv("AOC_COOKIE", ""),
			PollInterval:   getEnvDuration("AOC_POLL_INTERVAL", 15*time.Minute),
			RequestTimeout: getEnvDuration("AOC_REQUEST_TIMEOUT", 30*time.Second),
		},
		Discord: DiscordConfig{
			Token:       getEnv("DISCORD_TOKEN", ""),
			ChannelName: getEnv("DISCORD_CHANNEL_NAME", "advent-of-code"),
			Prefix:      getEnv("DISCORD_COMMAND_PREFIX", "!"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required settings are present and sane.
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return errors.New("DISCORD_TOKEN is required")
	}
	if c.AoC.LeaderboardURL == "" {
		return errors.New("AOC_URL is required")
	}
	if c.AoC.SessionCookie == "" {
		return errors.New("AOC_COOKIE is required")
	}
	if c.AoC.PollInterval < time.Minute {
		return fmt.Errorf("AOC_POLL_INTERVAL %s is below the 1 minute floor", c.AoC.PollInterval)
	}
	return nil
}

// IsProduction reports whether the app runs in production.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

// getEnv returns an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt returns an int environment variable.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	return defaultValue
}

// getEnvDuration returns a time.Duration environment variable.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return defaultValue
}
