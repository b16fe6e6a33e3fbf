package agents

import (
	"strings"
	"testing"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

func int64Ptr(v int64) *int64 { return &v }

func TestRunPricingInvoice_Confidence(t *testing.T) {
	t.Run("both budget bounds give high confidence", func(t *testing.T) {
		c := entities.Case{BudgetMinCents: int64Ptr(500000), BudgetMaxCents: int64Ptr(1200000)}
		result := RunPricingInvoice(c, nil)
		if result.Confidence != ConfidenceHigh {
			t.Fatalf("expected high, got %s", result.Confidence)
		}
	})

	t.Run("budget preference alone gives medium confidence", func(t *testing.T) {
		c := entities.Case{BudgetPreference: strPtr("balanced")}
		result := RunPricingInvoice(c, nil)
		if result.Confidence != ConfidenceMedium {
			t.Fatalf("expected medium, got %s", result.Confidence)
		}
	})

	t.Run("no budget signal gives low confidence", func(t *testing.T) {
		result := RunPricingInvoice(entities.Case{}, nil)
		if result.Confidence != ConfidenceLow {
			t.Fatalf("expected low, got %s", result.Confidence)
		}
	})
}

func TestRunPricingInvoice_ComposesThreeTiers(t *testing.T) {
	c := entities.Case{ServiceType: strPtr("burial")}
	result := RunPricingInvoice(c, nil)

	if len(result.Packages) != 3 {
		t.Fatalf("expected 3 packages, got %d", len(result.Packages))
	}
	if result.Packages[0].Tier != entities.TierEssential ||
		result.Packages[1].Tier != entities.TierStandard ||
		result.Packages[2].Tier != entities.TierPremium {
		t.Fatalf("unexpected tier order: %+v", result.Packages)
	}
}

func TestRunDocumentationCompliance(t *testing.T) {
	items := RunDocumentationCompliance(entities.Case{})

	if len(items) != 5 {
		t.Fatalf("expected 5 checklist items, got %d", len(items))
	}
	for _, item := range items {
		if !item.DirectorReviewRequired {
			t.Fatalf("every document requires director review, got %+v", item)
		}
		if item.LinkPlaceholder == "" {
			t.Fatalf("checklist item without a link placeholder: %+v", item)
		}
	}
	if items[0].Name != "Death certificate (original or certified copy)" {
		t.Fatalf("unexpected first document: %q", items[0].Name)
	}
	if !strings.Contains(ComplianceDisclaimer, "not legal advice") {
		t.Fatalf("disclaimer must state it is not legal advice")
	}
}
