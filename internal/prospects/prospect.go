// Package prospects implements the prospect domain for Vitrine.
// A prospect is a tenant record: a display name plus the instruction text
// driving the assistant persona on that prospect's landing page.
package prospects

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prospect represents a demo recipient with its shareable identifier,
// display name, and system prompt.
type Prospect struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommand carries the data needed to register a new prospect.
type CreateCommand struct {
	Name   string
	Prompt string
}

// Validate checks that required fields are present.
func (c CreateCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(c.Prompt) == "" {
		return ErrPromptRequired
	}
	return nil
}
