package interfaces

import (
	"context"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

// IPackageRepository abstracts DynamoDB persistence for generated packages
// and their companion scheduling tasks.
//
// ReplaceForCase is the orchestrator's atomicity boundary: it must delete
// the case's prior package and task sets and write the new ones inside one
// transaction, so a reader never observes a partial replacement. Packages
// and tasks travel together because one generation batch produces both.

type IPackageRepository interface {
	ListByCaseID(ctx context.Context, caseID string) ([]entities.Package, error)
	ListTasksByCaseID(ctx context.Context, caseID string) ([]entities.SchedulingTask, error)
	ReplaceForCase(ctx context.Context, caseID string, packages []entities.Package, tasks []entities.SchedulingTask) error
}
