package response

import (
	"time"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase"
)

type SchedulingTaskResponse struct {
	Title    string     `json:"title"`
	DueDate  *time.Time `json:"due_date,omitempty"`
	Category string     `json:"category"`
}

type DocumentChecklistItemResponse struct {
	Name                   string `json:"name"`
	LinkPlaceholder        string `json:"link_placeholder"`
	DirectorReviewRequired bool   `json:"director_review_required"`
}

type FamilyPreferencesResponse struct {
	Preferences  []string `json:"preferences"`
	Constraints  []string `json:"constraints"`
	ToneGuidance string   `json:"tone_guidance"`
}

type GenerateResponse struct {
	FamilyPreferences   FamilyPreferencesResponse       `json:"family_preferences"`
	Tasks               []SchedulingTaskResponse        `json:"tasks"`
	DocumentChecklist   []DocumentChecklistItemResponse `json:"document_checklist"`
	Packages            []PackageResponse               `json:"packages"`
	ConfidenceIndicator string                          `json:"confidence_indicator"`
}

func FromOrchestratorResult(r usecase.OrchestratorResult) GenerateResponse {
	return GenerateResponse{
		FamilyPreferences: FamilyPreferencesResponse{
			Preferences:  r.FamilyPreferences.Preferences,
			Constraints:  r.FamilyPreferences.Constraints,
			ToneGuidance: r.FamilyPreferences.ToneGuidance,
		},
		Tasks:               fromTasks(r.Tasks),
		DocumentChecklist:   fromChecklist(r.DocumentChecklist),
		Packages:            FromPackages(r.Packages),
		ConfidenceIndicator: string(r.Confidence),
	}
}

func fromTasks(tasks []entities.SchedulingTask) []SchedulingTaskResponse {
	out := make([]SchedulingTaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, SchedulingTaskResponse{Title: t.Title, DueDate: t.DueDate, Category: string(t.Category)})
	}
	return out
}

func fromChecklist(items []entities.DocumentChecklistItem) []DocumentChecklistItemResponse {
	out := make([]DocumentChecklistItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, DocumentChecklistItemResponse{
			Name:                   it.Name,
			LinkPlaceholder:        it.LinkPlaceholder,
			DirectorReviewRequired: it.DirectorReviewRequired,
		})
	}
	return out
}
