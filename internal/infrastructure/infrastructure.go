// Package infrastructure provides core service initialization for application
// startup. It assembles the shared dependencies (logging, database, upstream
// AI clients) that domain systems require.
package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/vitrine-ai/vitrine/internal/config"
	"github.com/vitrine-ai/vitrine/internal/llm"
	"github.com/vitrine-ai/vitrine/internal/speech"
	"github.com/vitrine-ai/vitrine/pkg/database"
	"github.com/vitrine-ai/vitrine/pkg/lifecycle"
)

// Infrastructure holds the core systems required by the domain modules.
// Database, Generator, and Synthesizer are nil when their configuration is
// absent; modules that depend on them are not mounted in that case, and the
// process still serves its health endpoints.
type Infrastructure struct {
	Lifecycle   *lifecycle.Coordinator
	Logger      *slog.Logger
	Database    database.System
	Generator   llm.Generator
	Synthesizer speech.Synthesizer
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(ctx context.Context, cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	infra := &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
	}

	if cfg.Database.Enabled() {
		db, err := database.New(&cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		infra.Database = db
	} else {
		logger.Warn("database not configured; prospect modules disabled")
	}

	if cfg.Generation.Enabled() {
		gen, err := llm.NewGemini(ctx, cfg.Generation.APIKey, cfg.Generation.Model, logger)
		if err != nil {
			return nil, fmt.Errorf("generation init failed: %w", err)
		}
		infra.Generator = gen
	} else {
		logger.Warn("generation API key not configured; chat module disabled")
	}

	if cfg.Speech.Enabled() {
		infra.Synthesizer = speech.NewClient(
			cfg.Speech.BaseURL,
			cfg.Speech.APIKey,
			cfg.Speech.Voice,
			cfg.Speech.Model,
			logger,
		)
	} else {
		logger.Warn("speech API key not configured; chat module disabled")
	}

	return infra, nil
}

// Start registers the configured infrastructure systems with the lifecycle
// coordinator.
func (i *Infrastructure) Start() error {
	if i.Database != nil {
		if err := i.Database.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("database start failed: %w", err)
		}
	}
	return nil
}
