package chat

import (
	"context"
	"strings"

	"github.com/artem13815/recipebot/pkg/llm"
)

// Agent is the application use case for one conversational exchange: take the
// transcript so far, obtain the model's next reply, return the extended
// transcript. It holds no mutable state and is safe for concurrent use.
type Agent struct {
	model llm.ChatModel
}

// NewAgent creates the default implementation over the given model.
func NewAgent(model llm.ChatModel) *Agent {
	return &Agent{model: model}
}

// Respond sends the full history to the model and returns a new history with
// the assistant's reply appended. If the history does not already start with
// a system message, the recipe system prompt is prepended first; a system
// message supplied by the caller is kept as-is. The input slice is never
// mutated.
//
// The backing service is stateless between calls, so the entire history is
// resubmitted every time.
func (a *Agent) Respond(ctx context.Context, history []llm.Message) ([]llm.Message, error) {
	var msgs []llm.Message
	if len(history) == 0 || history[0].Role != llm.RoleSystem {
		msgs = make([]llm.Message, 0, len(history)+2)
		msgs = append(msgs, llm.Message{Role: llm.RoleSystem, Content: SystemPrompt})
		msgs = append(msgs, history...)
	} else {
		msgs = history
	}

	reply, err := a.model.Complete(ctx, msgs)
	if err != nil {
		return nil, err
	}

	out := make([]llm.Message, 0, len(msgs)+1)
	out = append(out, msgs...)
	out = append(out, llm.Message{Role: llm.RoleAssistant, Content: strings.TrimSpace(reply)})
	return out, nil
}
