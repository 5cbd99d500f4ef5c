package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

type gemini struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGemini creates a Generator backed by the Gemini API.
func NewGemini(ctx context.Context, apiKey, model string, logger *slog.Logger) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &gemini{
		client: client,
		model:  model,
		logger: logger.With("system", "llm"),
	}, nil
}

func (g *gemini) Generate(ctx context.Context, system string, messages []Message) (string, error) {
	cfg := &genai.GenerateContentConfig{}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, buildContents(messages), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text, err := firstCandidateText(resp)
	if err != nil {
		return "", err
	}

	g.logger.Debug("completion received", "model", g.model, "chars", len(text))
	return text, nil
}

// buildContents maps transcript messages to the wire format in original order.
// Assistant turns carry the model role; everything else is sent as a user turn.
func buildContents(messages []Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		var role genai.Role = genai.RoleUser
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	return contents
}

// firstCandidateText extracts the text of the first candidate. An empty or
// malformed response is an error so the caller fails the whole turn.
func firstCandidateText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("response contained no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("first candidate contained no text")
	}
	return sb.String(), nil
}
