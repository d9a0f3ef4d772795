package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/recipebot/api/http/presenter"
	"github.com/artem13815/recipebot/pkg/llm"
)

// Responder produces the assistant's next turn for a conversation history.
type Responder interface {
	Respond(ctx context.Context, history []llm.Message) ([]llm.Message, error)
}

type ChatHandler struct {
	agent Responder
	model string // exposed in responses so clients know what answered
}

func NewChatHandler(agent Responder, model string) *ChatHandler {
	return &ChatHandler{agent: agent, model: model}
}

type chatRequest struct {
	Messages []llm.Message `json:"messages"`
}

type chatResponse struct {
	ID       string        `json:"id"`
	Model    string        `json:"model"`
	Messages []llm.Message `json:"messages"`
}

// Chat accepts a conversation history and returns it extended with the
// assistant's reply.
// @Summary Recipe chat turn
// @Description Sends the full conversation history to the model and returns the history plus one assistant message.
// @Tags    chat
// @Accept  json
// @Produce json
// @Param   request body chatRequest true "Conversation history (roles: system, user, assistant)"
// @Success 200 {object} chatResponse
// @Failure 400 {object} presenter.ErrorResponse "Malformed body or invalid message role"
// @Failure 502 {object} presenter.ErrorResponse "Completion service failure"
// @Router  /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	for i, m := range req.Messages {
		switch m.Role {
		case llm.RoleSystem, llm.RoleUser, llm.RoleAssistant:
		default:
			return presenter.Errorf(c, http.StatusBadRequest, "message %d: unknown role %q", i, m.Role)
		}
	}

	history, err := h.agent.Respond(c.Context(), req.Messages)
	if err != nil {
		return presenter.Errorf(c, http.StatusBadGateway, "completion failed: %v", err)
	}
	return presenter.JSON(c, http.StatusOK, chatResponse{
		ID:       uuid.NewString(),
		Model:    h.model,
		Messages: history,
	})
}
