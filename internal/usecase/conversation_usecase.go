package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	"github.com/Irtizzasmartlog/AIFuneral/internal/intake"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase/interfaces"
)

var (
	ErrInvalidCaseID       = errors.New("invalid case id")
	ErrCaseNotFound        = errors.New("case not found")
	ErrConversationMissing = errors.New("no intake conversation for case")
)

// IConversationUseCase exposes the intake conversation operations.
//
//   - ProcessTurn runs one conversation turn through the configured engine
//     and persists the resulting state.
//   - ApplyToCase copies the collected answers onto the case record.

type IConversationUseCase interface {
	ProcessTurn(ctx context.Context, caseID string, messages []entities.ChatMessage) (intake.TurnResult, error)
	ApplyToCase(ctx context.Context, caseID string) (entities.Case, error)
}

type ConversationUseCase struct {
	engine interfaces.IConversationEngine
	states interfaces.IConversationStateRepository
	cases  interfaces.ICaseRepository
}

var _ IConversationUseCase = (*ConversationUseCase)(nil)

func NewConversationUseCase(engine interfaces.IConversationEngine, states interfaces.IConversationStateRepository, cases interfaces.ICaseRepository) *ConversationUseCase {
	return &ConversationUseCase{engine: engine, states: states, cases: cases}
}

func (u *ConversationUseCase) ProcessTurn(ctx context.Context, caseID string, messages []entities.ChatMessage) (intake.TurnResult, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return intake.TurnResult{}, ErrInvalidCaseID
	}

	c, err := u.cases.GetByID(ctx, caseID)
	if err != nil {
		return intake.TurnResult{}, err
	}
	if c.ID == "" {
		return intake.TurnResult{}, ErrCaseNotFound
	}

	state, err := u.states.Get(ctx, caseID)
	if err != nil {
		return intake.TurnResult{}, err
	}

	result, newState, err := u.engine.RunTurn(ctx, caseID, messages, state)
	if err != nil {
		log.Printf("[intake][usecase] engine turn failed case_id=%s err=%v", caseID, err)
		return intake.TurnResult{}, err
	}

	newState.CaseID = caseID
	newState.UpdatedAt = time.Now().UTC()
	if err := u.states.Put(ctx, newState); err != nil {
		log.Printf("[intake][usecase] state persist failed case_id=%s err=%v", caseID, err)
		return intake.TurnResult{}, err
	}

	log.Printf("[intake][usecase] turn processed case_id=%s mode=%s collected=%d", caseID, newState.Mode, len(newState.Collected))
	return result, nil
}

// ApplyToCase writes the collected intake answers onto the case record.
// Only answered fields overwrite; skipped and unasked fields leave the
// existing attribute untouched.
func (u *ConversationUseCase) ApplyToCase(ctx context.Context, caseID string) (entities.Case, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return entities.Case{}, ErrInvalidCaseID
	}

	c, err := u.cases.GetByID(ctx, caseID)
	if err != nil {
		return entities.Case{}, err
	}
	if c.ID == "" {
		return entities.Case{}, ErrCaseNotFound
	}

	state, err := u.states.Get(ctx, caseID)
	if err != nil {
		return entities.Case{}, err
	}
	if state.CaseID == "" || len(state.Collected) == 0 {
		return entities.Case{}, ErrConversationMissing
	}

	attrs := intake.CaseAttributesFromAnswers(caseID, state.Collected)
	merged := mergeCaseAttributes(c, attrs)
	merged.UpdatedAt = time.Now().UTC()

	saved, err := u.cases.Save(ctx, merged)
	if err != nil {
		return entities.Case{}, err
	}
	log.Printf("[intake][usecase] answers applied case_id=%s", caseID)
	return saved, nil
}

// mergeCaseAttributes overlays non-nil collected attributes onto the stored
// case, preserving identity, status and timestamps.
func mergeCaseAttributes(dst, src entities.Case) entities.Case {
	if src.DeceasedFullName != nil {
		dst.DeceasedFullName = src.DeceasedFullName
	}
	if src.DeceasedPreferredName != nil {
		dst.DeceasedPreferredName = src.DeceasedPreferredName
	}
	if src.DeceasedGender != nil {
		dst.DeceasedGender = src.DeceasedGender
	}
	if src.DeceasedDOB != nil {
		dst.DeceasedDOB = src.DeceasedDOB
	}
	if src.DeceasedDOD != nil {
		dst.DeceasedDOD = src.DeceasedDOD
	}
	if src.NextOfKinName != nil {
		dst.NextOfKinName = src.NextOfKinName
	}
	if src.NextOfKinRelationship != nil {
		dst.NextOfKinRelationship = src.NextOfKinRelationship
	}
	if src.NextOfKinPhone != nil {
		dst.NextOfKinPhone = src.NextOfKinPhone
	}
	if src.NextOfKinEmail != nil {
		dst.NextOfKinEmail = src.NextOfKinEmail
	}
	if src.ServiceType != nil {
		dst.ServiceType = src.ServiceType
	}
	if src.ServiceStyle != nil {
		dst.ServiceStyle = src.ServiceStyle
	}
	if src.VenuePreference != nil {
		dst.VenuePreference = src.VenuePreference
	}
	if src.ExpectedAttendeesMax != nil {
		dst.ExpectedAttendeesMax = src.ExpectedAttendeesMax
	}
	if src.BudgetMinCents != nil {
		dst.BudgetMinCents = src.BudgetMinCents
	}
	if src.BudgetMaxCents != nil {
		dst.BudgetMaxCents = src.BudgetMaxCents
	}
	if src.BudgetPreference != nil {
		dst.BudgetPreference = src.BudgetPreference
	}
	if src.Suburb != nil {
		dst.Suburb = src.Suburb
	}
	if src.State != nil {
		dst.State = src.State
	}
	if src.PreferredServiceDate != nil {
		dst.PreferredServiceDate = src.PreferredServiceDate
	}
	if src.DateFlexibility != nil {
		dst.DateFlexibility = src.DateFlexibility
	}
	if src.CulturalFaithRequirements != nil {
		dst.CulturalFaithRequirements = src.CulturalFaithRequirements
	}
	if src.Urgency != nil {
		dst.Urgency = src.Urgency
	}
	if src.Notes != nil {
		dst.Notes = src.Notes
	}
	if src.AddOns != nil {
		dst.AddOns = src.AddOns
	}
	return dst
}
