package interfaces

import (
	"context"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

// IAgentRunRepository abstracts DynamoDB persistence for agent audit
// records. Audit writes are best-effort relative to the orchestration
// transaction; a failed audit write fails the run before any replacement
// happens.

type IAgentRunRepository interface {
	Create(ctx context.Context, run entities.AgentRun) (entities.AgentRun, error)
	ListByCaseID(ctx context.Context, caseID string) ([]entities.AgentRun, error)
}
