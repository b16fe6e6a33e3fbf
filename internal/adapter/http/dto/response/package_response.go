package response

import (
	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	"github.com/Irtizzasmartlog/AIFuneral/internal/pricing"
)

type LineItemResponse struct {
	Description string `json:"description"`
	AmountCents int64  `json:"amount_cents"`
	Category    string `json:"category"`
}

type PackageResponse struct {
	ID            string             `json:"id"`
	CaseID        string             `json:"case_id"`
	Tier          string             `json:"tier"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	TotalCents    int64              `json:"total_cents"`
	TotalDisplay  string             `json:"total_display"`
	Inclusions    []string           `json:"inclusions"`
	AttendeeCount int                `json:"attendee_count"`
	Estimated     bool               `json:"estimated"`
	LineItems     []LineItemResponse `json:"line_items"`
	IsRecommended bool               `json:"is_recommended"`
	SortOrder     int                `json:"sort_order"`
}

func FromPackage(p entities.Package) PackageResponse {
	lines := make([]LineItemResponse, 0, len(p.LineItems))
	for _, l := range p.LineItems {
		lines = append(lines, LineItemResponse{
			Description: l.Description,
			AmountCents: l.AmountCents,
			Category:    string(l.Category),
		})
	}
	return PackageResponse{
		ID:            p.ID,
		CaseID:        p.CaseID,
		Tier:          string(p.Tier),
		Name:          p.Name,
		Description:   p.Description,
		TotalCents:    p.TotalCents,
		TotalDisplay:  pricing.FormatAUD(p.TotalCents),
		Inclusions:    p.Inclusions,
		AttendeeCount: p.Assumptions.AttendeeCount,
		Estimated:     p.Assumptions.Estimated,
		LineItems:     lines,
		IsRecommended: p.IsRecommended,
		SortOrder:     p.SortOrder,
	}
}

func FromPackages(packages []entities.Package) []PackageResponse {
	out := make([]PackageResponse, 0, len(packages))
	for _, p := range packages {
		out = append(out, FromPackage(p))
	}
	return out
}
