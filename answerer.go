package presrag

import "context"

// Answerer provides natural language question answering over the document
// corpus. Each question is answered independently; no conversation state is
// kept across calls.
type Answerer interface {
	// Answer answers a natural language question and returns the
	// generation service's response verbatim.
	Answer(ctx context.Context, question string) (string, error)
}
