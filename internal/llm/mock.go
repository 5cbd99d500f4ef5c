package llm

import "context"

type mockGenerator struct {
	reply string
	err   error

	calls        int
	lastSystem   string
	lastMessages []Message
}

// NewMockGenerator creates a Generator that records calls and returns a fixed
// reply or error. Intended for tests.
func NewMockGenerator(reply string, err error) *mockGenerator {
	return &mockGenerator{reply: reply, err: err}
}

func (m *mockGenerator) Generate(ctx context.Context, system string, messages []Message) (string, error) {
	m.calls++
	m.lastSystem = system
	m.lastMessages = messages
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

// Calls returns the number of Generate invocations.
func (m *mockGenerator) Calls() int { return m.calls }

// LastSystem returns the system instruction from the most recent call.
func (m *mockGenerator) LastSystem() string { return m.lastSystem }

// LastMessages returns the message sequence from the most recent call.
func (m *mockGenerator) LastMessages() []Message { return m.lastMessages }
