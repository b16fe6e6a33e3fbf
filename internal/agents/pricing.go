package agents

import (
	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	"github.com/Irtizzasmartlog/AIFuneral/internal/pricing"
)

// ConfidenceIndicator expresses how well-grounded a pricing run is in the
// family's stated inputs.

type ConfidenceIndicator string

const (
	ConfidenceLow    ConfidenceIndicator = "low"
	ConfidenceMedium ConfidenceIndicator = "medium"
	ConfidenceHigh   ConfidenceIndicator = "high"
)

// PricingResult is the pricing agent's output: the three composed packages
// plus a confidence indicator.
type PricingResult struct {
	Packages   []entities.Package  `json:"packages"`
	Confidence ConfidenceIndicator `json:"confidence_indicator"`
}

// RunPricingInvoice composes the tiered packages from the price book.
// Confidence is high when both budget bounds were stated, medium when only a
// budget preference was, and low otherwise.
func RunPricingInvoice(c entities.Case, constraints *entities.PricingConstraints) PricingResult {
	confidence := ConfidenceLow
	switch {
	case c.BudgetMinCents != nil && c.BudgetMaxCents != nil:
		confidence = ConfidenceHigh
	case c.BudgetPreference != nil:
		confidence = ConfidenceMedium
	}

	return PricingResult{
		Packages:   pricing.BuildPackages(c, constraints),
		Confidence: confidence,
	}
}
