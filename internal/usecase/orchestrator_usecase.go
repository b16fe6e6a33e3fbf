package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/Irtizzasmartlog/AIFuneral/internal/agents"
	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// OrchestratorResult collects every derived artifact of one generation run.
type OrchestratorResult struct {
	FamilyPreferences entities.FamilyPreferences       `json:"family_preferences"`
	Tasks             []entities.SchedulingTask        `json:"tasks"`
	DocumentChecklist []entities.DocumentChecklistItem `json:"document_checklist"`
	Packages          []entities.Package               `json:"packages"`
	Confidence        agents.ConfidenceIndicator       `json:"confidence_indicator"`
}

// IOrchestratorUseCase runs the per-case agents and atomically replaces the
// case's derived artifacts.
//
// The orchestrator is a thin sequencer: each agent is an independent pure
// function over the case attributes. Its one non-trivial contract is the
// replacement boundary: if persistence fails partway, the prior committed
// package and task sets stay authoritative.

type IOrchestratorUseCase interface {
	Run(ctx context.Context, caseID string, constraints *entities.PricingConstraints) (OrchestratorResult, error)
}

type OrchestratorUseCase struct {
	cases     interfaces.ICaseRepository
	packages  interfaces.IPackageRepository
	agentRuns interfaces.IAgentRunRepository
	now       func() time.Time
}

var _ IOrchestratorUseCase = (*OrchestratorUseCase)(nil)

func NewOrchestratorUseCase(cases interfaces.ICaseRepository, packages interfaces.IPackageRepository, agentRuns interfaces.IAgentRunRepository) *OrchestratorUseCase {
	return &OrchestratorUseCase{
		cases:     cases,
		packages:  packages,
		agentRuns: agentRuns,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *OrchestratorUseCase) Run(ctx context.Context, caseID string, constraints *entities.PricingConstraints) (OrchestratorResult, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return OrchestratorResult{}, ErrInvalidCaseID
	}

	c, err := u.cases.GetByID(ctx, caseID)
	if err != nil {
		return OrchestratorResult{}, err
	}
	if c.ID == "" {
		return OrchestratorResult{}, ErrCaseNotFound
	}

	log.Printf("[orchestrator][usecase] run start case_id=%s", caseID)

	familyResult := agents.RunFamilyConcentration(c)
	if err := u.recordRun(ctx, caseID, "FamilyConcentration", nil, familyResult); err != nil {
		return OrchestratorResult{}, err
	}

	tasks := agents.RunSchedulingLogistics(c, u.now())
	if err := u.recordRun(ctx, caseID, "SchedulingLogistics", nil, tasks); err != nil {
		return OrchestratorResult{}, err
	}

	checklist := agents.RunDocumentationCompliance(c)
	if err := u.recordRun(ctx, caseID, "DocumentationCompliance", nil, checklist); err != nil {
		return OrchestratorResult{}, err
	}

	pricingResult := agents.RunPricingInvoice(c, constraints)
	if err := u.recordRun(ctx, caseID, "PricingInvoice", constraints, pricingResult); err != nil {
		return OrchestratorResult{}, err
	}

	packages := make([]entities.Package, len(pricingResult.Packages))
	for i, p := range pricingResult.Packages {
		p.ID = uuid.NewString()
		p.CaseID = caseID
		packages[i] = p
	}

	// All-or-nothing: the repository performs the delete-and-write inside
	// one transaction. On failure the prior set remains authoritative.
	if err := u.packages.ReplaceForCase(ctx, caseID, packages, tasks); err != nil {
		log.Printf("[orchestrator][usecase] replace failed case_id=%s err=%v", caseID, err)
		return OrchestratorResult{}, err
	}

	if _, err := u.cases.UpdateStatus(ctx, caseID, entities.CaseStatusQuoted); err != nil {
		log.Printf("[orchestrator][usecase] status update failed case_id=%s err=%v", caseID, err)
		return OrchestratorResult{}, err
	}

	log.Printf("[orchestrator][usecase] run complete case_id=%s packages=%d tasks=%d", caseID, len(packages), len(tasks))
	return OrchestratorResult{
		FamilyPreferences: familyResult,
		Tasks:             tasks,
		DocumentChecklist: checklist,
		Packages:          packages,
		Confidence:        pricingResult.Confidence,
	}, nil
}

func (u *OrchestratorUseCase) recordRun(ctx context.Context, caseID, agentName string, input, output any) error {
	inputSnap, err := json.Marshal(map[string]any{"case_id": caseID, "input": input})
	if err != nil {
		return err
	}
	outputSnap, err := json.Marshal(output)
	if err != nil {
		return err
	}
	_, err = u.agentRuns.Create(ctx, entities.AgentRun{
		ID:             uuid.NewString(),
		CaseID:         caseID,
		AgentName:      agentName,
		InputSnapshot:  inputSnap,
		OutputSnapshot: outputSnap,
		CreatedAt:      u.now(),
	})
	if err != nil {
		log.Printf("[orchestrator][usecase] agent run audit failed case_id=%s agent=%s err=%v", caseID, agentName, err)
	}
	return err
}
