package interfaces

import (
	"context"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

// ICaseRepository abstracts DynamoDB persistence for Case.
//
// GetByID returns a zero-value Case (empty ID) when the record is absent;
// callers translate that into their own not-found error.

type ICaseRepository interface {
	Create(ctx context.Context, c entities.Case) (entities.Case, error)
	GetByID(ctx context.Context, id string) (entities.Case, error)
	Save(ctx context.Context, c entities.Case) (entities.Case, error)
	UpdateStatus(ctx context.Context, id string, status entities.CaseStatus) (entities.Case, error)
}
