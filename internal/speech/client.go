package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

type client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	voice   string
	model   string
	logger  *slog.Logger
}

type synthRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id,omitempty"`
}

// NewClient creates a Synthesizer backed by an ElevenLabs-compatible
// text-to-speech endpoint. The voice selects the synthesis voice; the
// returned stream is MPEG audio.
func NewClient(baseURL, apiKey, voice, model string, logger *slog.Logger) Synthesizer {
	return &client{
		http:    http.DefaultClient,
		baseURL: baseURL,
		apiKey:  apiKey,
		voice:   voice,
		model:   model,
		logger:  logger.With("system", "speech"),
	}
}

func (c *client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	body, err := json.Marshal(synthRequest{Text: text, ModelID: c.model})
	if err != nil {
		return nil, fmt.Errorf("marshal synthesis request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, url.PathEscape(c.voice))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build synthesis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesis request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("synthesis returned status %s", resp.Status)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read synthesis response: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("synthesis returned empty audio")
	}

	c.logger.Debug("audio synthesized", "voice", c.voice, "bytes", len(audio))
	return audio, nil
}
