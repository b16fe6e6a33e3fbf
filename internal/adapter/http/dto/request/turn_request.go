package request

import (
	"errors"
	"strings"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

var (
	ErrEmptyMessages   = errors.New("messages must not be empty")
	ErrInvalidChatRole = errors.New("invalid chat role")
)

type ChatMessageRequest struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content"`
}

// TurnRequest is the intake conversation payload: the client resends the
// full transcript each turn and the server replies with the next assistant
// message.
type TurnRequest struct {
	Messages []ChatMessageRequest `json:"messages" binding:"required"`
}

func (r TurnRequest) ToMessages() ([]entities.ChatMessage, error) {
	if len(r.Messages) == 0 {
		return nil, ErrEmptyMessages
	}
	out := make([]entities.ChatMessage, 0, len(r.Messages))
	for _, m := range r.Messages {
		role := entities.ChatRole(strings.ToLower(strings.TrimSpace(m.Role)))
		if role != entities.RoleUser && role != entities.RoleAssistant {
			return nil, ErrInvalidChatRole
		}
		out = append(out, entities.ChatMessage{Role: role, Content: m.Content})
	}
	return out, nil
}
