package entities

import (
	"strings"
	"time"
)

// CaseStatus represents the lifecycle of a funeral case.
//
// Domain notes:
//   - A case starts in Intake while the conversation engine collects fields.
//   - Generating packages moves it to Quoted; the family then approves.

type CaseStatus string

const (
	CaseStatusIntake   CaseStatus = "Intake"
	CaseStatusQuoted   CaseStatus = "Quoted"
	CaseStatusApproved CaseStatus = "Approved"
	CaseStatusClosed   CaseStatus = "Closed"
)

// AddOnFlags is the structured add-on selection for a case. It replaces the
// free-form JSON blob the legacy intake stored under "addOns".
type AddOnFlags struct {
	Invitations   bool `json:"invitations,omitempty"`
	Livestream    bool `json:"livestream,omitempty"`
	Flowers       bool `json:"flowers,omitempty"`
	PrintedSheets bool `json:"printedSheets,omitempty"`
	Slideshow     bool `json:"slideshow,omitempty"`
	Catering      bool `json:"catering,omitempty"`
	MemorialPage  bool `json:"memorialPage,omitempty"`
}

// Case is the funeral case record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - BudgetMinCents/BudgetMaxCents are integer cents (AUD minor units).
//
// All intake-collected attributes are optional; nil means "never provided".
type Case struct {
	ID                        string      `json:"id"`
	CaseNumber                string      `json:"case_number"`
	Status                    CaseStatus  `json:"status"`
	DeceasedFullName          *string     `json:"deceased_full_name,omitempty"`
	DeceasedPreferredName     *string     `json:"deceased_preferred_name,omitempty"`
	DeceasedGender            *string     `json:"deceased_gender,omitempty"`
	DeceasedDOB               *time.Time  `json:"deceased_dob,omitempty"`
	DeceasedDOD               *time.Time  `json:"deceased_dod,omitempty"`
	NextOfKinName             *string     `json:"next_of_kin_name,omitempty"`
	NextOfKinRelationship     *string     `json:"next_of_kin_relationship,omitempty"`
	NextOfKinPhone            *string     `json:"next_of_kin_phone,omitempty"`
	NextOfKinEmail            *string     `json:"next_of_kin_email,omitempty"`
	ServiceType               *string     `json:"service_type,omitempty"`
	ServiceStyle              *string     `json:"service_style,omitempty"`
	VenuePreference           *string     `json:"venue_preference,omitempty"`
	ExpectedAttendeesMin      *int        `json:"expected_attendees_min,omitempty"`
	ExpectedAttendeesMax      *int        `json:"expected_attendees_max,omitempty"`
	BudgetMinCents            *int64      `json:"budget_min_cents,omitempty"`
	BudgetMaxCents            *int64      `json:"budget_max_cents,omitempty"`
	BudgetPreference          *string     `json:"budget_preference,omitempty"`
	Suburb                    *string     `json:"suburb,omitempty"`
	State                     *string     `json:"state,omitempty"`
	PreferredServiceDate      *time.Time  `json:"preferred_service_date,omitempty"`
	DateFlexibility           *string     `json:"date_flexibility,omitempty"`
	CulturalFaithRequirements *string     `json:"cultural_faith_requirements,omitempty"`
	Notes                     *string     `json:"notes,omitempty"`
	InternalNotes             *string     `json:"internal_notes,omitempty"`
	Urgency                   *string     `json:"urgency,omitempty"`
	AddOns                    *AddOnFlags `json:"add_ons,omitempty"`
	CreatedAt                 time.Time   `json:"created_at"`
	UpdatedAt                 time.Time   `json:"updated_at"`
}

// PricingConstraints are caller-supplied overrides for one composition call.
// A set field takes precedence over the matching case attribute; nil fields
// fall through to the case.
type PricingConstraints struct {
	AttendeeCount  *int    `json:"attendee_count,omitempty"`
	VenueTier      *string `json:"venue_tier,omitempty"`
	TransportCount *int    `json:"transport_count,omitempty"`
	Flowers        *bool   `json:"flowers,omitempty"`
}

// EffectiveAttendeeCount resolves the attendee count for guest-dependent
// pricing: constraint wins over the case value, and 50 is assumed when
// neither is present.
func (c Case) EffectiveAttendeeCount(constraints *PricingConstraints) int {
	if constraints != nil && constraints.AttendeeCount != nil {
		return *constraints.AttendeeCount
	}
	if c.ExpectedAttendeesMax != nil {
		return *c.ExpectedAttendeesMax
	}
	return 50
}

// FlowersRequested resolves the flowers flag: constraint wins, then add-ons.
func (c Case) FlowersRequested(constraints *PricingConstraints) bool {
	if constraints != nil && constraints.Flowers != nil {
		return *constraints.Flowers
	}
	return c.AddOns != nil && c.AddOns.Flowers
}

// IsCremation reports whether the case's service type indicates cremation.
// Anything else (including unset) is treated as burial.
func (c Case) IsCremation() bool {
	if c.ServiceType == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*c.ServiceType), "cremation")
}
