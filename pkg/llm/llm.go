package llm

import (
	"context"
	"errors"
)

// Role tags who authored a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a conversation. Values are never mutated after
// construction; a history is simply an ordered []Message.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ErrNoCompletion is returned when the completion API answers without any
// usable choice.
var ErrNoCompletion = errors.New("no completion returned by model")

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
// Complete performs exactly one blocking round trip; cancellation and
// deadlines are the caller's responsibility via ctx.
type ChatModel interface {
	Complete(ctx context.Context, msgs []Message) (string, error)
}
