package interfaces

import (
	"context"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	"github.com/Irtizzasmartlog/AIFuneral/internal/intake"
)

// IConversationEngine is one interchangeable intake conversation backend.
// The local deterministic engine and the LLM-backed engine both implement
// it; selection happens at wiring time via configuration.
//
// Implementations must be stateless across calls: the returned state is
// what the caller persists, and the passed-in state is the only memory.

type IConversationEngine interface {
	RunTurn(ctx context.Context, caseID string, messages []entities.ChatMessage, state entities.ConversationState) (intake.TurnResult, entities.ConversationState, error)
}
