package summarizer

import "context"

// Provider is an interface for text summarization backends.
//
// Complete sends a system-style instruction and a user-style payload to the
// backend and returns exactly one generated text per call. Backends that
// produce multiple completion choices collapse them to the first one.
type Provider interface {
	Complete(ctx context.Context, instruction, input string) (string, error)
}
