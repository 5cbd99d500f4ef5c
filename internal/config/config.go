// Package config loads and finalizes the Vitrine service configuration from
// TOML files and environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/vitrine-ai/vitrine/pkg/database"
	"github.com/vitrine-ai/vitrine/pkg/middleware"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvVitrineEnv     = "VITRINE_ENV"
	EnvVitrineVersion = "VITRINE_VERSION"
)

var databaseEnv = &database.Env{
	Host:            "VITRINE_DB_HOST",
	Port:            "VITRINE_DB_PORT",
	Name:            "VITRINE_DB_NAME",
	User:            "VITRINE_DB_USER",
	Password:        "VITRINE_DB_PASSWORD",
	SSLMode:         "VITRINE_DB_SSL_MODE",
	MaxOpenConns:    "VITRINE_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "VITRINE_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "VITRINE_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "VITRINE_DB_CONN_TIMEOUT",
}

var adminEnv = &middleware.AuthEnv{
	Username: "VITRINE_ADMIN_USERNAME",
	Password: "VITRINE_ADMIN_PASSWORD",
	Realm:    "VITRINE_ADMIN_REALM",
}

// Config is the root configuration for the Vitrine service.
type Config struct {
	Server     ServerConfig          `toml:"server"`
	Database   database.Config       `toml:"database"`
	Admin      middleware.AuthConfig `toml:"admin"`
	Chat       ChatConfig            `toml:"chat"`
	Generation GenerationConfig      `toml:"generation"`
	Speech     SpeechConfig          `toml:"speech"`
	Version    string                `toml:"version"`
}

// Env returns the VITRINE_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvVitrineEnv); env != "" {
		return env
	}
	return "local"
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. A .env file is loaded first for convenience; if no
// config.toml exists, defaults and environment variables provide all
// configuration.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Admin.Merge(&overlay.Admin)
	c.Chat.Merge(&overlay.Chat)
	c.Generation.Merge(&overlay.Generation)
	c.Speech.Merge(&overlay.Speech)
}

// Finalize applies defaults, environment variable overrides, and validation
// across all sub-configs.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Admin.Finalize(adminEnv); err != nil {
		return fmt.Errorf("admin: %w", err)
	}
	if err := c.Chat.Finalize(); err != nil {
		return fmt.Errorf("chat: %w", err)
	}
	if err := c.Generation.Finalize(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}
	if err := c.Speech.Finalize(); err != nil {
		return fmt.Errorf("speech: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvVitrineVersion); v != "" {
		c.Version = v
	}
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvVitrineEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
