package response

import (
	"testing"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

func TestFromPackage(t *testing.T) {
	p := entities.Package{
		ID:          "p-2",
		CaseID:      "case-1",
		Tier:        entities.TierStandard,
		Name:        "Standard",
		Description: "Chapel service with viewing",
		TotalCents:  1009000,
		Inclusions:  []string{"Professional services", "Third-party fees (as listed)"},
		Assumptions: entities.PackageAssumptions{AttendeeCount: 80, Estimated: true},
		LineItems: []entities.LineItem{
			{Description: "Professional service fee", AmountCents: 295000, Category: entities.CategoryService},
		},
		IsRecommended: true,
		SortOrder:     2,
	}

	res := FromPackage(p)
	if res.ID != "p-2" || res.CaseID != "case-1" || res.Tier != "Standard" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.TotalCents != 1009000 || res.TotalDisplay != "$10,090" {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if res.AttendeeCount != 80 || !res.Estimated {
		t.Fatalf("assumptions must flatten onto the response: %+v", res)
	}
	if len(res.LineItems) != 1 || res.LineItems[0].Category != "service" {
		t.Fatalf("unexpected line items: %+v", res.LineItems)
	}
	if !res.IsRecommended || res.SortOrder != 2 {
		t.Fatalf("unexpected ordering fields: %+v", res)
	}
}

func TestFromPackagesKeepsOrder(t *testing.T) {
	out := FromPackages([]entities.Package{
		{Tier: entities.TierEssential, SortOrder: 1},
		{Tier: entities.TierStandard, SortOrder: 2},
	})
	if len(out) != 2 || out[0].Tier != "Essential" || out[1].Tier != "Standard" {
		t.Fatalf("unexpected order: %+v", out)
	}
}
