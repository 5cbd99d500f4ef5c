package config

import "os"

const (
	EnvGenerationAPIKey = "VITRINE_GENERATION_API_KEY"
	EnvGenerationModel  = "VITRINE_GENERATION_MODEL"

	// GeminiAPIKeyEnv is honored as a fallback so the standard Gemini
	// variable works without Vitrine-specific configuration.
	GeminiAPIKeyEnv = "GEMINI_API_KEY"
)

// GenerationConfig holds text generation settings.
type GenerationConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

// Enabled reports whether an API key is configured.
func (c *GenerationConfig) Enabled() bool {
	return c.APIKey != ""
}

// Finalize applies defaults and environment variable overrides. A missing API
// key is not an error; it disables the chat module at startup instead.
func (c *GenerationConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *GenerationConfig) Merge(overlay *GenerationConfig) {
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
}

func (c *GenerationConfig) loadDefaults() {
	if c.Model == "" {
		c.Model = "gemini-2.0-flash"
	}
}

func (c *GenerationConfig) loadEnv() {
	if v := os.Getenv(EnvGenerationAPIKey); v != "" {
		c.APIKey = v
	} else if v := os.Getenv(GeminiAPIKeyEnv); v != "" && c.APIKey == "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvGenerationModel); v != "" {
		c.Model = v
	}
}
