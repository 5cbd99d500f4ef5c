// Package llm provides text generation for chat turns.
package llm

import "context"

// Role identifies the originator of a conversation message.
type Role string

const (
	// RoleUser represents a visitor message.
	RoleUser Role = "user"
	// RoleAssistant represents an assistant message.
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged entry in a conversation transcript.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Generator defines a pluggable text-generation backend. Generate produces a
// single completion for the given system instruction and ordered message
// sequence.
type Generator interface {
	Generate(ctx context.Context, system string, messages []Message) (string, error)
}
