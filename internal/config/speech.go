package config

import "os"

const (
	EnvSpeechBaseURL = "VITRINE_SPEECH_BASE_URL"
	EnvSpeechAPIKey  = "VITRINE_SPEECH_API_KEY"
	EnvSpeechVoice   = "VITRINE_SPEECH_VOICE"
	EnvSpeechModel   = "VITRINE_SPEECH_MODEL"
)

// SpeechConfig holds speech synthesis settings.
type SpeechConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Voice   string `toml:"voice"`
	Model   string `toml:"model"`
}

// Enabled reports whether an API key is configured.
func (c *SpeechConfig) Enabled() bool {
	return c.APIKey != ""
}

// Finalize applies defaults and environment variable overrides. A missing API
// key is not an error; it disables the chat module at startup instead.
func (c *SpeechConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *SpeechConfig) Merge(overlay *SpeechConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Voice != "" {
		c.Voice = overlay.Voice
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
}

func (c *SpeechConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.elevenlabs.io"
	}
	if c.Voice == "" {
		c.Voice = "21m00Tcm4TlvDq8ikWAM"
	}
	if c.Model == "" {
		c.Model = "eleven_multilingual_v2"
	}
}

func (c *SpeechConfig) loadEnv() {
	if v := os.Getenv(EnvSpeechBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvSpeechAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvSpeechVoice); v != "" {
		c.Voice = v
	}
	if v := os.Getenv(EnvSpeechModel); v != "" {
		c.Model = v
	}
}
