package ai

import "context"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the conversation sent to a provider.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Options carries per-call generation settings.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// Provider is an opaque text-completion backend. Implementations must be
// safe for concurrent use. Retry and backoff policy belongs to the
// implementation, not to callers.
type Provider interface {
	Complete(ctx context.Context, model string, msgs []Message, opts Options) (string, error)
}
