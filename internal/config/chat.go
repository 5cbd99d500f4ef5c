package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/vitrine-ai/vitrine/pkg/middleware"
)

const EnvChatBasePath = "VITRINE_CHAT_BASE_PATH"

var chatCORSEnv = &middleware.CORSEnv{
	Enabled:        "VITRINE_CHAT_CORS_ENABLED",
	Origins:        "VITRINE_CHAT_CORS_ORIGINS",
	AllowedMethods: "VITRINE_CHAT_CORS_ALLOWED_METHODS",
	AllowedHeaders: "VITRINE_CHAT_CORS_ALLOWED_HEADERS",
	MaxAge:         "VITRINE_CHAT_CORS_MAX_AGE",
}

// ChatConfig holds settings for the chat relay module.
type ChatConfig struct {
	BasePath string                `toml:"base_path"`
	CORS     middleware.CORSConfig `toml:"cors"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ChatConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	return c.CORS.Finalize(chatCORSEnv)
}

// Merge overwrites non-zero fields from overlay.
func (c *ChatConfig) Merge(overlay *ChatConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	c.CORS.Merge(&overlay.CORS)
}

func (c *ChatConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/chat"
	}
}

func (c *ChatConfig) loadEnv() {
	if v := os.Getenv(EnvChatBasePath); v != "" {
		c.BasePath = v
	}
}

func (c *ChatConfig) validate() error {
	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base_path must start with /: %s", c.BasePath)
	}
	return nil
}
