package relay

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vitrine-ai/vitrine/pkg/handlers"
	"github.com/vitrine-ai/vitrine/pkg/routes"
)

// Handler provides the HTTP endpoint for chat turns.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "relay"),
	}
}

// Routes returns the route group definition for the chat endpoint.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/{$}", Handler: h.Converse},
		},
	}
}

// Converse accepts a JSON chat turn and responds with the combined reply text
// and audio data URI, or a JSON error with a non-success status.
func (h *Handler) Converse(w http.ResponseWriter, r *http.Request) {
	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidBody)
		return
	}

	result, err := h.sys.Converse(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
