package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ICaseUseCase exposes basic case record operations. Heavy lifting lives in
// the conversation and orchestrator usecases; this one just owns identity.

type ICaseUseCase interface {
	CreateCase(ctx context.Context) (entities.Case, error)
	GetCase(ctx context.Context, id string) (entities.Case, error)
}

type CaseUseCase struct {
	repo interfaces.ICaseRepository
}

var _ ICaseUseCase = (*CaseUseCase)(nil)

func NewCaseUseCase(repo interfaces.ICaseRepository) *CaseUseCase {
	return &CaseUseCase{repo: repo}
}

func (u *CaseUseCase) CreateCase(ctx context.Context) (entities.Case, error) {
	now := time.Now().UTC()
	id := uuid.NewString()
	c := entities.Case{
		ID:         id,
		CaseNumber: "FC-" + strings.ToUpper(id[:8]),
		Status:     entities.CaseStatusIntake,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, c)
}

func (u *CaseUseCase) GetCase(ctx context.Context, id string) (entities.Case, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Case{}, ErrInvalidCaseID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Case{}, err
	}
	if c.ID == "" {
		return entities.Case{}, ErrCaseNotFound
	}
	return c, nil
}
