package speech

import "context"

type mockSynth struct {
	audio []byte
	err   error

	calls    int
	lastText string
}

// NewMockSynth creates a Synthesizer that records calls and returns fixed
// audio bytes or an error. Intended for tests.
func NewMockSynth(audio []byte, err error) *mockSynth {
	return &mockSynth{audio: audio, err: err}
}

func (m *mockSynth) Synthesize(ctx context.Context, text string) ([]byte, error) {
	m.calls++
	m.lastText = text
	if m.err != nil {
		return nil, m.err
	}
	return m.audio, nil
}

// Calls returns the number of Synthesize invocations.
func (m *mockSynth) Calls() int { return m.calls }

// LastText returns the text from the most recent call.
func (m *mockSynth) LastText() string { return m.lastText }
