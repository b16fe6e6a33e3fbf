package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase/interfaces"
	mock_interfaces "github.com/Irtizzasmartlog/AIFuneral/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type quoteMocks struct {
	cases    *mock_interfaces.MockICaseRepository
	packages *mock_interfaces.MockIPackageRepository
	renderer *mock_interfaces.MockIQuoteRenderer
	email    *mock_interfaces.MockIEmailSender
}

func newQuoteUseCase(ctrl *gomock.Controller) (*QuoteUseCase, quoteMocks) {
	m := quoteMocks{
		cases:    mock_interfaces.NewMockICaseRepository(ctrl),
		packages: mock_interfaces.NewMockIPackageRepository(ctrl),
		renderer: mock_interfaces.NewMockIQuoteRenderer(ctrl),
		email:    mock_interfaces.NewMockIEmailSender(ctrl),
	}
	return NewQuoteUseCase(m.cases, m.packages, m.renderer, m.email, "Acme Funerals"), m
}

func caseWithKin() entities.Case {
	name := "John Smith"
	email := "mary@example.com"
	return entities.Case{
		ID:               "case-1",
		CaseNumber:       "FC-AAAA1111",
		Status:           entities.CaseStatusQuoted,
		DeceasedFullName: &name,
		NextOfKinEmail:   &email,
	}
}

func generatedPackages() []entities.Package {
	return []entities.Package{
		{Tier: entities.TierStandard, Name: "Standard", TotalCents: 1009000, IsRecommended: true, SortOrder: 2},
		{Tier: entities.TierEssential, Name: "Essential", TotalCents: 763000, SortOrder: 1},
		{Tier: entities.TierPremium, Name: "Premium", TotalCents: 1406000, SortOrder: 3},
	}
}

func TestQuoteUseCase_QuotePDF(t *testing.T) {
	t.Run("renderer not wired", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, "")
		_, err := uc.QuotePDF(context.Background(), "case-1")
		if !errors.Is(err, ErrPDFNotWired) {
			t.Fatalf("expected ErrPDFNotWired, got %v", err)
		}
	})

	t.Run("no packages yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCase(ctrl)

		m.cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(caseWithKin(), nil)
		m.packages.EXPECT().ListByCaseID(gomock.Any(), "case-1").Return(nil, nil)

		_, err := uc.QuotePDF(context.Background(), "case-1")
		if !errors.Is(err, ErrNoPackages) {
			t.Fatalf("expected ErrNoPackages, got %v", err)
		}
	})

	t.Run("renders the sorted packages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCase(ctrl)

		m.cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(caseWithKin(), nil)
		m.packages.EXPECT().ListByCaseID(gomock.Any(), "case-1").Return(generatedPackages(), nil)
		m.renderer.EXPECT().RenderQuote(gomock.AssignableToTypeOf(interfaces.QuoteDocument{})).DoAndReturn(
			func(doc interfaces.QuoteDocument) ([]byte, error) {
				if doc.CaseNumber != "FC-AAAA1111" || doc.DeceasedName != "John Smith" {
					t.Fatalf("unexpected document header: %+v", doc)
				}
				if doc.OrganizationName != "Acme Funerals" {
					t.Fatalf("unexpected organization: %q", doc.OrganizationName)
				}
				if len(doc.Packages) != 3 || doc.Packages[0].Tier != entities.TierEssential {
					t.Fatalf("packages must arrive sorted, got %+v", doc.Packages)
				}
				if doc.Disclaimer == "" {
					t.Fatalf("expected the compliance disclaimer")
				}
				return []byte("%PDF"), nil
			},
		)

		pdf, err := uc.QuotePDF(context.Background(), "case-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pdf) == 0 {
			t.Fatalf("expected pdf bytes")
		}
	})

	t.Run("unnamed deceased falls back to N/A", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCase(ctrl)

		c := caseWithKin()
		c.DeceasedFullName = nil
		m.cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(c, nil)
		m.packages.EXPECT().ListByCaseID(gomock.Any(), "case-1").Return(generatedPackages(), nil)
		m.renderer.EXPECT().RenderQuote(gomock.Any()).DoAndReturn(
			func(doc interfaces.QuoteDocument) ([]byte, error) {
				if doc.DeceasedName != "N/A" {
					t.Fatalf("expected N/A placeholder, got %q", doc.DeceasedName)
				}
				return []byte("%PDF"), nil
			},
		)

		if _, err := uc.QuotePDF(context.Background(), "case-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_EmailQuote(t *testing.T) {
	t.Run("sender not wired", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, "")
		_, err := uc.EmailQuote(context.Background(), "case-1", "")
		if !errors.Is(err, ErrEmailNotWired) {
			t.Fatalf("expected ErrEmailNotWired, got %v", err)
		}
	})

	t.Run("falls back to the next of kin address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCase(ctrl)

		m.cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(caseWithKin(), nil)
		m.packages.EXPECT().ListByCaseID(gomock.Any(), "case-1").Return(generatedPackages(), nil)
		m.email.EXPECT().Send(gomock.Any(), "mary@example.com", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _, subject, html string) (string, error) {
				if !strings.Contains(subject, "FC-AAAA1111") {
					t.Fatalf("subject must carry the case number, got %q", subject)
				}
				if !strings.Contains(html, "Acme Funerals") || !strings.Contains(html, "(Recommended)") {
					t.Fatalf("unexpected body: %q", html)
				}
				return "msg-1", nil
			},
		)

		id, err := uc.EmailQuote(context.Background(), "case-1", "  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "msg-1" {
			t.Fatalf("expected external id, got %q", id)
		}
	})

	t.Run("explicit recipient wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCase(ctrl)

		m.cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(caseWithKin(), nil)
		m.packages.EXPECT().ListByCaseID(gomock.Any(), "case-1").Return(generatedPackages(), nil)
		m.email.EXPECT().Send(gomock.Any(), "other@example.com", gomock.Any(), gomock.Any()).Return("msg-2", nil)

		if _, err := uc.EmailQuote(context.Background(), "case-1", "other@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no recipient anywhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteUseCase(ctrl)

		c := caseWithKin()
		c.NextOfKinEmail = nil
		m.cases.EXPECT().GetByID(gomock.Any(), "case-1").Return(c, nil)
		m.packages.EXPECT().ListByCaseID(gomock.Any(), "case-1").Return(generatedPackages(), nil)

		_, err := uc.EmailQuote(context.Background(), "case-1", "")
		if !errors.Is(err, ErrNoRecipient) {
			t.Fatalf("expected ErrNoRecipient, got %v", err)
		}
	})
}
