package openai

import (
	"context"
	"errors"

	oai "github.com/sashabaranov/go-openai"

	"github.com/artem13815/recipebot/pkg/llm"
)

// Client calls an OpenAI-compatible chat completions endpoint with a fixed
// model. The model name is resolved once at startup and never changes for
// the lifetime of the process.
type Client struct {
	api    *oai.Client
	apiKey string
	Model  string
}

// New builds a client for the given credentials. baseURL may be empty, in
// which case the SDK's default endpoint is used.
func New(apiKey, baseURL, model string) *Client {
	cfg := oai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:    oai.NewClientWithConfig(cfg),
		apiKey: apiKey,
		Model:  model,
	}
}

// Complete sends the full message history and returns the first choice's
// content verbatim. A response with no choices or no content yields
// llm.ErrNoCompletion; transport and auth failures propagate unchanged.
func (c *Client) Complete(ctx context.Context, msgs []llm.Message) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("openai api key is empty")
	}
	req := oai.ChatCompletionRequest{
		Model:    c.Model,
		Messages: make([]oai.ChatCompletionMessage, 0, len(msgs)),
	}
	for _, m := range msgs {
		req.Messages = append(req.Messages, oai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", llm.ErrNoCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
