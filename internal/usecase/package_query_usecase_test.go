package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	mock_interfaces "github.com/Irtizzasmartlog/AIFuneral/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPackageQueryUseCase_ListPackages(t *testing.T) {
	t.Run("invalid case id", func(t *testing.T) {
		uc := NewPackageQueryUseCase(nil, nil)
		_, err := uc.ListPackages(context.Background(), "")
		if !errors.Is(err, ErrInvalidCaseID) {
			t.Fatalf("expected ErrInvalidCaseID, got %v", err)
		}
	})

	t.Run("case not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cases := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewPackageQueryUseCase(cases, nil)

		cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{}, nil)

		_, err := uc.ListPackages(context.Background(), "case-1")
		if !errors.Is(err, ErrCaseNotFound) {
			t.Fatalf("expected ErrCaseNotFound, got %v", err)
		}
	})

	t.Run("packages come back in tier order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cases := mock_interfaces.NewMockICaseRepository(ctrl)
		packages := mock_interfaces.NewMockIPackageRepository(ctrl)
		uc := NewPackageQueryUseCase(cases, packages)

		cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{ID: "case-1"}, nil)
		packages.EXPECT().ListByCaseID(gomock.Any(), "case-1").Return([]entities.Package{
			{Tier: entities.TierPremium, SortOrder: 3},
			{Tier: entities.TierEssential, SortOrder: 1},
			{Tier: entities.TierStandard, SortOrder: 2},
		}, nil)

		out, err := uc.ListPackages(context.Background(), "case-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out[0].Tier != entities.TierEssential || out[1].Tier != entities.TierStandard || out[2].Tier != entities.TierPremium {
			t.Fatalf("unexpected order: %+v", out)
		}
	})
}

func TestPackageQueryUseCase_ListTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cases := mock_interfaces.NewMockICaseRepository(ctrl)
	packages := mock_interfaces.NewMockIPackageRepository(ctrl)
	uc := NewPackageQueryUseCase(cases, packages)

	tasks := []entities.SchedulingTask{{Title: "Chapel booking confirmation", Category: entities.TaskCategoryVenue}}
	cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{ID: "case-1"}, nil)
	packages.EXPECT().ListTasksByCaseID(gomock.Any(), "case-1").Return(tasks, nil)

	out, err := uc.ListTasks(context.Background(), " case-1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Title != "Chapel booking confirmation" {
		t.Fatalf("unexpected tasks: %+v", out)
	}
}
