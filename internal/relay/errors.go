package relay

import (
	"errors"
	"net/http"

	"github.com/vitrine-ai/vitrine/internal/prospects"
)

// Relay errors surfaced to the widget.
var (
	ErrMissingProspect = errors.New("prospect_id is required")
	ErrInvalidBody     = errors.New("invalid request body")

	// ErrUpstream is the single generic error for any external service or
	// storage failure. The specific cause is logged, never disclosed.
	ErrUpstream = errors.New("failed to get response")
)

// MapHTTPStatus maps relay errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrMissingProspect) || errors.Is(err, ErrInvalidBody) {
		return http.StatusBadRequest
	}
	if errors.Is(err, prospects.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
