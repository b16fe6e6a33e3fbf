package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	mock_interfaces "github.com/Irtizzasmartlog/AIFuneral/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCaseUseCase_CreateCase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICaseRepository(ctrl)
	uc := NewCaseUseCase(repo)

	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Case{})).DoAndReturn(
		func(_ context.Context, c entities.Case) (entities.Case, error) {
			if c.ID == "" {
				t.Fatalf("expected generated id")
			}
			if !strings.HasPrefix(c.CaseNumber, "FC-") {
				t.Fatalf("unexpected case number: %q", c.CaseNumber)
			}
			if c.Status != entities.CaseStatusIntake {
				t.Fatalf("new cases start in intake, got %s", c.Status)
			}
			if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
				t.Fatalf("expected timestamps")
			}
			return c, nil
		},
	)

	c, err := uc.CreateCase(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID == "" {
		t.Fatalf("expected case id in result")
	}
}

func TestCaseUseCase_GetCase(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCaseUseCase(nil)
		_, err := uc.GetCase(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidCaseID) {
			t.Fatalf("expected ErrInvalidCaseID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{}, errors.New("db"))

		_, err := uc.GetCase(context.Background(), "case-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{}, nil)

		_, err := uc.GetCase(context.Background(), "case-1")
		if !errors.Is(err, ErrCaseNotFound) {
			t.Fatalf("expected ErrCaseNotFound, got %v", err)
		}
	})

	t.Run("success trims the id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICaseRepository(ctrl)
		uc := NewCaseUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "case-1").Return(entities.Case{ID: "case-1"}, nil)

		c, err := uc.GetCase(context.Background(), " case-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "case-1" {
			t.Fatalf("unexpected case: %+v", c)
		}
	})
}
