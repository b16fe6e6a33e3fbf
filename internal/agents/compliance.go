package agents

import "github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"

// ComplianceDisclaimer accompanies every generated checklist and quote.
const ComplianceDisclaimer = "This is not legal advice. Director review required. All documents must be verified for compliance before use."

// RunDocumentationCompliance returns the fixed document checklist every case
// must clear before the service.
func RunDocumentationCompliance(_ entities.Case) []entities.DocumentChecklistItem {
	return []entities.DocumentChecklistItem{
		{Name: "Death certificate (original or certified copy)", LinkPlaceholder: "[Upload link]", DirectorReviewRequired: true},
		{Name: "Application for cremation or burial permit (as applicable)", LinkPlaceholder: "[Form link]", DirectorReviewRequired: true},
		{Name: "Authority to release (next of kin)", LinkPlaceholder: "[Form link]", DirectorReviewRequired: true},
		{Name: "Funeral arrangement agreement", LinkPlaceholder: "[Form link]", DirectorReviewRequired: true},
		{Name: "Payment and pricing disclosure", LinkPlaceholder: "[Document link]", DirectorReviewRequired: true},
	}
}
