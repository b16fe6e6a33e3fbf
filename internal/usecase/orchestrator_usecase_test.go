package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	mock_interfaces "github.com/Irtizzasmartlog/AIFuneral/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type orchestratorMocks struct {
	cases     *mock_interfaces.MockICaseRepository
	packages  *mock_interfaces.MockIPackageRepository
	agentRuns *mock_interfaces.MockIAgentRunRepository
}

func newOrchestratorUseCase(ctrl *gomock.Controller) (*OrchestratorUseCase, orchestratorMocks) {
	m := orchestratorMocks{
		cases:     mock_interfaces.NewMockICaseRepository(ctrl),
		packages:  mock_interfaces.NewMockIPackageRepository(ctrl),
		agentRuns: mock_interfaces.NewMockIAgentRunRepository(ctrl),
	}
	uc := NewOrchestratorUseCase(m.cases, m.packages, m.agentRuns)
	uc.now = func() time.Time { return time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC) }
	return uc, m
}

func quotableCase() entities.Case {
	serviceType := "burial"
	min, max := int64(500000), int64(1200000)
	return entities.Case{
		ID:             "case-1",
		CaseNumber:     "FC-AAAA1111",
		Status:         entities.CaseStatusIntake,
		ServiceType:    &serviceType,
		BudgetMinCents: &min,
		BudgetMaxCents: &max,
	}
}

func TestOrchestratorUseCase_Run(t *testing.T) {
	t.Run("invalid case id", func(t *testing.T) {
		uc := NewOrchestratorUseCase(nil, nil, nil)
		_, err := uc.Run(context.Background(), " ", nil)
		if !errors.Is(err, ErrInvalidCaseID) {
			t.Fatalf("expected ErrInvalidCaseID, got %v", err)
		}
	})

	t.Run("case not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrchestratorUseCase(ctrl)

		m.cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{}, nil)

		_, err := uc.Run(context.Background(), "case-1", nil)
		if !errors.Is(err, ErrCaseNotFound) {
			t.Fatalf("expected ErrCaseNotFound, got %v", err)
		}
	})

	t.Run("full run records four agents and replaces artifacts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrchestratorUseCase(ctrl)

		m.cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(quotableCase(), nil)

		agentNames := make([]string, 0, 4)
		m.agentRuns.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.AgentRun{})).DoAndReturn(
			func(_ context.Context, run entities.AgentRun) (entities.AgentRun, error) {
				if run.ID == "" || run.CaseID != "case-1" {
					t.Fatalf("unexpected agent run: %+v", run)
				}
				if len(run.InputSnapshot) == 0 || len(run.OutputSnapshot) == 0 {
					t.Fatalf("agent run must carry input and output snapshots")
				}
				agentNames = append(agentNames, run.AgentName)
				return run, nil
			},
		).Times(4)

		m.packages.EXPECT().ReplaceForCase(gomock.Any(), "case-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, caseID string, packages []entities.Package, tasks []entities.SchedulingTask) error {
				if len(packages) != 3 {
					t.Fatalf("expected 3 packages, got %d", len(packages))
				}
				for _, p := range packages {
					if p.ID == "" || p.CaseID != "case-1" {
						t.Fatalf("package must carry identity, got %+v", p)
					}
				}
				if len(tasks) == 0 {
					t.Fatalf("expected scheduling tasks")
				}
				return nil
			},
		)
		m.cases.EXPECT().UpdateStatus(gomock.Any(), "case-1", entities.CaseStatusQuoted).
			Return(entities.Case{ID: "case-1", Status: entities.CaseStatusQuoted}, nil)

		result, err := uc.Run(context.Background(), "case-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantAgents := []string{"FamilyConcentration", "SchedulingLogistics", "DocumentationCompliance", "PricingInvoice"}
		for i, name := range wantAgents {
			if agentNames[i] != name {
				t.Fatalf("agent %d: expected %s, got %s", i, name, agentNames[i])
			}
		}
		if len(result.Packages) != 3 {
			t.Fatalf("expected 3 packages in result, got %d", len(result.Packages))
		}
		if result.Confidence != "high" {
			t.Fatalf("both budget bounds present, expected high confidence, got %s", result.Confidence)
		}
		if len(result.DocumentChecklist) != 5 {
			t.Fatalf("expected 5 checklist items, got %d", len(result.DocumentChecklist))
		}
	})

	t.Run("replace failure aborts before the status update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrchestratorUseCase(ctrl)

		m.cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(quotableCase(), nil)
		m.agentRuns.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.AgentRun{}, nil).Times(4)
		m.packages.EXPECT().ReplaceForCase(gomock.Any(), "case-1", gomock.Any(), gomock.Any()).
			Return(errors.New("transaction canceled"))

		_, err := uc.Run(context.Background(), "case-1", nil)
		if err == nil || err.Error() != "transaction canceled" {
			t.Fatalf("expected replace error, got %v", err)
		}
	})

	t.Run("audit failure aborts before any replacement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newOrchestratorUseCase(ctrl)

		m.cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(quotableCase(), nil)
		m.agentRuns.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.AgentRun{}, errors.New("db"))

		_, err := uc.Run(context.Background(), "case-1", nil)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected audit error, got %v", err)
		}
	})
}
