package llm

import "context"

// Provider is a chat-completion backend.
type Provider interface {
	// Complete runs one completion.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name identifies the backend in logs and records.
	Name() string
}
