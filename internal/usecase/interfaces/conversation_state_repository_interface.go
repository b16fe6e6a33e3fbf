package interfaces

import (
	"context"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

// IConversationStateRepository abstracts the keyed store for per-case intake
// conversation state. The engine is stateless between turns: every turn must
// be reconstructable from what Get returns for the case id.
//
// Writes for one case are last-write-wins; the engine re-derives everything
// from committed answers, never from caller-held state, so a lost
// intermediate write degrades to a re-asked question.

type IConversationStateRepository interface {
	// Get returns a zero-value state (empty CaseID) when no conversation
	// exists yet for the case.
	Get(ctx context.Context, caseID string) (entities.ConversationState, error)
	Put(ctx context.Context, state entities.ConversationState) error
}
