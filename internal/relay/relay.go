// Package relay implements the stateless chat turn handler. Each turn looks up
// the prospect, generates a reply from the full client-held transcript, and
// synthesizes the reply as audio. No conversation state is kept server-side.
package relay

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vitrine-ai/vitrine/internal/llm"
	"github.com/vitrine-ai/vitrine/internal/prospects"
	"github.com/vitrine-ai/vitrine/internal/speech"
)

// TurnRequest carries one chat turn from the widget: the prospect identifier,
// the new visitor message, and the full prior transcript in original order.
type TurnRequest struct {
	ProspectID string        `json:"prospect_id"`
	Message    string        `json:"message"`
	History    []llm.Message `json:"history"`
}

// TurnResult is the combined output of a successful turn. Audio is a
// self-contained data URI; the two fields are always returned together.
type TurnResult struct {
	Reply string `json:"reply"`
	Audio string `json:"audio"`
}

// System defines the public contract for the chat relay.
type System interface {
	Handler() *Handler
	Converse(ctx context.Context, req TurnRequest) (*TurnResult, error)
}

type relay struct {
	prospects prospects.System
	generator llm.Generator
	synth     speech.Synthesizer
	logger    *slog.Logger
}

// New creates a chat relay over the given prospect store and external services.
func New(
	store prospects.System,
	generator llm.Generator,
	synth speech.Synthesizer,
	logger *slog.Logger,
) System {
	return &relay{
		prospects: store,
		generator: generator,
		synth:     synth,
		logger:    logger.With("system", "relay"),
	}
}

func (r *relay) Handler() *Handler {
	return NewHandler(r, r.logger)
}

// Converse runs one chat turn. The two outbound calls are sequential: synthesis
// depends on the generated text. Any upstream or storage failure collapses into
// ErrUpstream with the cause logged; a synthesis failure discards the already
// generated reply so no partial response is ever returned.
func (r *relay) Converse(ctx context.Context, req TurnRequest) (*TurnResult, error) {
	if req.ProspectID == "" {
		return nil, ErrMissingProspect
	}

	id, err := uuid.Parse(req.ProspectID)
	if err != nil {
		return nil, prospects.ErrNotFound
	}

	p, err := r.prospects.Find(ctx, id)
	if err != nil {
		if err == prospects.ErrNotFound {
			return nil, err
		}
		r.logger.Error("prospect lookup failed", "prospect_id", id, "error", err)
		return nil, ErrUpstream
	}

	messages := make([]llm.Message, 0, len(req.History)+1)
	messages = append(messages, req.History...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: req.Message})

	reply, err := r.generator.Generate(ctx, p.Prompt, messages)
	if err != nil {
		r.logger.Error("text generation failed", "prospect_id", id, "error", err)
		return nil, ErrUpstream
	}

	audio, err := r.synth.Synthesize(ctx, reply)
	if err != nil {
		r.logger.Error("speech synthesis failed", "prospect_id", id, "error", err)
		return nil, ErrUpstream
	}

	return &TurnResult{
		Reply: reply,
		Audio: speech.DataURI(audio),
	}, nil
}
