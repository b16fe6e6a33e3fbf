package response

import (
	"github.com/Irtizzasmartlog/AIFuneral/internal/intake"
)

type AddOnOptionResponse struct {
	Name       string `json:"name"`
	PriceRange string `json:"price_range"`
	Note       string `json:"note,omitempty"`
}

type CollectedAnswerResponse struct {
	State string `json:"state"`
	Value string `json:"value,omitempty"`
}

// TurnResponse is one assistant turn of the intake conversation. Packages
// and assumptions are present only once generation has happened.
type TurnResponse struct {
	AssistantText       string                             `json:"assistant_text"`
	Mode                string                             `json:"mode"`
	NextQuestion        *string                            `json:"next_question,omitempty"`
	Collected           map[string]CollectedAnswerResponse `json:"collected"`
	Packages            []PackageResponse                  `json:"packages,omitempty"`
	Assumptions         []string                           `json:"assumptions,omitempty"`
	ComplianceChecklist []string                           `json:"compliance_checklist"`
	AddOnOptions        []AddOnOptionResponse              `json:"add_ons"`
	Notes               string                             `json:"notes,omitempty"`
}

func FromTurnResult(r intake.TurnResult) TurnResponse {
	collected := make(map[string]CollectedAnswerResponse, len(r.Collected))
	for key, ans := range r.Collected {
		collected[string(key)] = CollectedAnswerResponse{State: string(ans.State), Value: ans.Value}
	}

	addOns := make([]AddOnOptionResponse, 0, len(r.AddOnOptions))
	for _, opt := range r.AddOnOptions {
		addOns = append(addOns, AddOnOptionResponse{Name: opt.Name, PriceRange: opt.PriceRange, Note: opt.Note})
	}

	var packages []PackageResponse
	if len(r.Packages) > 0 {
		packages = FromPackages(r.Packages)
	}

	return TurnResponse{
		AssistantText:       r.AssistantText,
		Mode:                string(r.Mode),
		NextQuestion:        r.NextQuestion,
		Collected:           collected,
		Packages:            packages,
		Assumptions:         r.Assumptions,
		ComplianceChecklist: r.ComplianceChecklist,
		AddOnOptions:        addOns,
		Notes:               r.Notes,
	}
}
