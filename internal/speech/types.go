// Package speech provides speech synthesis for chat replies.
package speech

import "context"

// Synthesizer is the contract for producing audio from text.
type Synthesizer interface {
	// Synthesize converts text to a complete audio stream (MPEG bytes).
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
