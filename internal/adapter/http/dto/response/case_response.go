package response

import (
	"time"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

type CaseResponse struct {
	ID                        string     `json:"id"`
	CaseNumber                string     `json:"case_number"`
	Status                    string     `json:"status"`
	DeceasedFullName          *string    `json:"deceased_full_name,omitempty"`
	DeceasedPreferredName     *string    `json:"deceased_preferred_name,omitempty"`
	DeceasedDOB               *time.Time `json:"deceased_dob,omitempty"`
	DeceasedDOD               *time.Time `json:"deceased_dod,omitempty"`
	NextOfKinName             *string    `json:"next_of_kin_name,omitempty"`
	NextOfKinRelationship     *string    `json:"next_of_kin_relationship,omitempty"`
	NextOfKinPhone            *string    `json:"next_of_kin_phone,omitempty"`
	NextOfKinEmail            *string    `json:"next_of_kin_email,omitempty"`
	ServiceType               *string    `json:"service_type,omitempty"`
	ServiceStyle              *string    `json:"service_style,omitempty"`
	VenuePreference           *string    `json:"venue_preference,omitempty"`
	ExpectedAttendeesMax      *int       `json:"expected_attendees_max,omitempty"`
	BudgetMinCents            *int64     `json:"budget_min_cents,omitempty"`
	BudgetMaxCents            *int64     `json:"budget_max_cents,omitempty"`
	BudgetPreference          *string    `json:"budget_preference,omitempty"`
	Suburb                    *string    `json:"suburb,omitempty"`
	State                     *string    `json:"state,omitempty"`
	PreferredServiceDate      *time.Time `json:"preferred_service_date,omitempty"`
	DateFlexibility           *string    `json:"date_flexibility,omitempty"`
	CulturalFaithRequirements *string    `json:"cultural_faith_requirements,omitempty"`
	Urgency                   *string    `json:"urgency,omitempty"`
	Notes                     *string    `json:"notes,omitempty"`
	CreatedAt                 time.Time  `json:"created_at"`
	UpdatedAt                 time.Time  `json:"updated_at"`
}

// FromCase shapes the outward case view. Internal notes never leave the
// service.
func FromCase(c entities.Case) CaseResponse {
	return CaseResponse{
		ID:                        c.ID,
		CaseNumber:                c.CaseNumber,
		Status:                    string(c.Status),
		DeceasedFullName:          c.DeceasedFullName,
		DeceasedPreferredName:     c.DeceasedPreferredName,
		DeceasedDOB:               c.DeceasedDOB,
		DeceasedDOD:               c.DeceasedDOD,
		NextOfKinName:             c.NextOfKinName,
		NextOfKinRelationship:     c.NextOfKinRelationship,
		NextOfKinPhone:            c.NextOfKinPhone,
		NextOfKinEmail:            c.NextOfKinEmail,
		ServiceType:               c.ServiceType,
		ServiceStyle:              c.ServiceStyle,
		VenuePreference:           c.VenuePreference,
		ExpectedAttendeesMax:      c.ExpectedAttendeesMax,
		BudgetMinCents:            c.BudgetMinCents,
		BudgetMaxCents:            c.BudgetMaxCents,
		BudgetPreference:          c.BudgetPreference,
		Suburb:                    c.Suburb,
		State:                     c.State,
		PreferredServiceDate:      c.PreferredServiceDate,
		DateFlexibility:           c.DateFlexibility,
		CulturalFaithRequirements: c.CulturalFaithRequirements,
		Urgency:                   c.Urgency,
		Notes:                     c.Notes,
		CreatedAt:                 c.CreatedAt,
		UpdatedAt:                 c.UpdatedAt,
	}
}
