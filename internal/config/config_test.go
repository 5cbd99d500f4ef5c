package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vitrine-ai/vitrine/pkg/middleware"
)

func TestFinalizeDefaults(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8080", cfg.Server.Addr())
	}
	if cfg.Server.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v, want 30s", cfg.Server.ShutdownTimeoutDuration())
	}
	if cfg.Chat.BasePath != "/chat" {
		t.Errorf("Chat.BasePath = %q, want /chat", cfg.Chat.BasePath)
	}
	if cfg.Generation.Model != "gemini-2.0-flash" {
		t.Errorf("Generation.Model = %q, want gemini-2.0-flash", cfg.Generation.Model)
	}
	if cfg.Speech.Model != "eleven_multilingual_v2" {
		t.Errorf("Speech.Model = %q, want eleven_multilingual_v2", cfg.Speech.Model)
	}
	if cfg.Database.Enabled() {
		t.Error("Database.Enabled() = true for empty config")
	}
	if cfg.Admin.Enabled() {
		t.Error("Admin.Enabled() = true for empty config")
	}
}

func TestFinalizeEnvOverrides(t *testing.T) {
	t.Setenv(EnvServerPort, "9090")
	t.Setenv(EnvChatBasePath, "/converse")
	t.Setenv(EnvGenerationAPIKey, "gen-key")
	t.Setenv(EnvSpeechAPIKey, "speech-key")
	t.Setenv("VITRINE_ADMIN_USERNAME", "ops")
	t.Setenv("VITRINE_ADMIN_PASSWORD", "hunter2")

	cfg := &Config{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Chat.BasePath != "/converse" {
		t.Errorf("Chat.BasePath = %q, want /converse", cfg.Chat.BasePath)
	}
	if !cfg.Generation.Enabled() {
		t.Error("Generation.Enabled() = false with API key set")
	}
	if !cfg.Speech.Enabled() {
		t.Error("Speech.Enabled() = false with API key set")
	}
	if !cfg.Admin.Enabled() {
		t.Error("Admin.Enabled() = false with credentials set")
	}
}

func TestFinalizeInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"bad port", Config{Server: ServerConfig{Port: 70000}}},
		{"bad read timeout", Config{Server: ServerConfig{ReadTimeout: "soon"}}},
		{"relative chat base path", Config{Chat: ChatConfig{BasePath: "chat"}}},
		{"partial admin credential", Config{Admin: middleware.AuthConfig{Username: "ops"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(); err == nil {
				t.Error("Finalize() = nil, want error")
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 8080},
		Chat:   ChatConfig{BasePath: "/chat"},
		Speech: SpeechConfig{Voice: "base-voice"},
	}
	overlay := &Config{
		Server:     ServerConfig{Port: 9000},
		Speech:     SpeechConfig{Voice: "overlay-voice"},
		Generation: GenerationConfig{Model: "gemini-2.5-pro"},
	}

	base.Merge(overlay)

	if base.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want 127.0.0.1", base.Server.Host)
	}
	if base.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", base.Server.Port)
	}
	if base.Chat.BasePath != "/chat" {
		t.Errorf("Chat.BasePath = %q, want /chat", base.Chat.BasePath)
	}
	if base.Speech.Voice != "overlay-voice" {
		t.Errorf("Speech.Voice = %q, want overlay-voice", base.Speech.Voice)
	}
	if base.Generation.Model != "gemini-2.5-pro" {
		t.Errorf("Generation.Model = %q, want gemini-2.5-pro", base.Generation.Model)
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, BaseConfigFile), `
version = "1.0.0"

[server]
port = 8081

[speech]
voice = "base-voice"
`)
	writeFile(t, filepath.Join(dir, "config.staging.toml"), `
[server]
port = 9001
`)

	chdir(t, dir)
	t.Setenv(EnvVitrineEnv, "staging")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Version != "1.0.0" {
		t.Errorf("Version = %q, want 1.0.0", cfg.Version)
	}
	if cfg.Server.Port != 9001 {
		t.Errorf("Server.Port = %d, want overlay value 9001", cfg.Server.Port)
	}
	if cfg.Speech.Voice != "base-voice" {
		t.Errorf("Speech.Voice = %q, want base-voice", cfg.Speech.Voice)
	}
	if cfg.Env() != "staging" {
		t.Errorf("Env() = %q, want staging", cfg.Env())
	}
}

func TestLoadWithoutConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", cfg.Server.Port)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
}
