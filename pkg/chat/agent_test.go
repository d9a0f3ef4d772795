package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/artem13815/recipebot/pkg/llm"
)

// fakeModel records the history it was asked to complete and returns a
// canned reply or error.
type fakeModel struct {
	reply string
	err   error
	got   []llm.Message
}

func (f *fakeModel) Complete(_ context.Context, msgs []llm.Message) (string, error) {
	f.got = msgs
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestRespondEmptyHistoryGetsSystemPrompt(t *testing.T) {
	model := &fakeModel{reply: "  ## Pasta\nBoil water.  "}
	agent := NewAgent(model)

	out, err := agent.Respond(context.Background(), nil)
	require.NoError(t, err)

	require.Equal(t, []llm.Message{
		{Role: llm.RoleSystem, Content: SystemPrompt},
	}, model.got)
	require.Equal(t, []llm.Message{
		{Role: llm.RoleSystem, Content: SystemPrompt},
		{Role: llm.RoleAssistant, Content: "## Pasta\nBoil water."},
	}, out)
}

func TestRespondPrependsPromptBeforeUserTurns(t *testing.T) {
	model := &fakeModel{reply: "## Omelette"}
	agent := NewAgent(model)

	history := []llm.Message{{Role: llm.RoleUser, Content: "I have eggs"}}
	out, err := agent.Respond(context.Background(), history)
	require.NoError(t, err)

	require.Len(t, model.got, 2)
	require.Equal(t, llm.RoleSystem, model.got[0].Role)
	require.Equal(t, SystemPrompt, model.got[0].Content)
	require.Equal(t, history[0], model.got[1])

	require.Len(t, out, 3)
	require.Equal(t, llm.Message{Role: llm.RoleAssistant, Content: "## Omelette"}, out[2])
}

func TestRespondKeepsCallerSystemMessage(t *testing.T) {
	model := &fakeModel{reply: "ok"}
	agent := NewAgent(model)

	history := []llm.Message{
		{Role: llm.RoleSystem, Content: "custom"},
		{Role: llm.RoleUser, Content: "hi"},
	}
	out, err := agent.Respond(context.Background(), history)
	require.NoError(t, err)

	// The custom system message is preserved, never replaced or duplicated.
	require.Equal(t, history, model.got)
	require.Len(t, out, 3)
	require.Equal(t, llm.Message{Role: llm.RoleSystem, Content: "custom"}, out[0])
	require.Equal(t, llm.Message{Role: llm.RoleAssistant, Content: "ok"}, out[2])
}

func TestRespondDoesNotMutateInput(t *testing.T) {
	model := &fakeModel{reply: "reply"}
	agent := NewAgent(model)

	history := []llm.Message{
		{Role: llm.RoleSystem, Content: "custom"},
		{Role: llm.RoleUser, Content: "hi"},
	}
	snapshot := append([]llm.Message(nil), history...)

	out, err := agent.Respond(context.Background(), history)
	require.NoError(t, err)
	require.Equal(t, snapshot, history)
	require.Len(t, out, len(history)+1)

	// Appending must not have written through into the caller's slice.
	out[0].Content = "clobbered"
	require.Equal(t, "custom", history[0].Content)
}

func TestRespondPropagatesModelError(t *testing.T) {
	wantErr := errors.New("connection refused")
	agent := NewAgent(&fakeModel{err: wantErr})

	out, err := agent.Respond(context.Background(), []llm.Message{{Role: llm.RoleUser, Content: "hi"}})
	require.ErrorIs(t, err, wantErr)
	require.Nil(t, out)
}
