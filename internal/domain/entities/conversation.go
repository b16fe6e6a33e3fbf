package entities

import "time"

// IntakeMode is the conversation engine's state. Tailoring is a behavior
// within GENERATED, not a third mode.

type IntakeMode string

const (
	ModeCollecting IntakeMode = "COLLECTING"
	ModeGenerated  IntakeMode = "GENERATED"
)

// FieldKey identifies one intake question. The set and order of keys is
// fixed at compile time by the intake schema.
type FieldKey string

const (
	FieldDeceasedFullName          FieldKey = "deceasedFullName"
	FieldDeceasedDOB               FieldKey = "deceasedDob"
	FieldDeceasedDOD               FieldKey = "deceasedDod"
	FieldDeceasedPreferredName     FieldKey = "deceasedPreferredName"
	FieldNextOfKinName             FieldKey = "nextOfKinName"
	FieldNextOfKinRelationship     FieldKey = "nextOfKinRelationship"
	FieldNextOfKinPhone            FieldKey = "nextOfKinPhone"
	FieldNextOfKinEmail            FieldKey = "nextOfKinEmail"
	FieldServiceType               FieldKey = "serviceType"
	FieldServiceStyle              FieldKey = "serviceStyle"
	FieldVenuePreference           FieldKey = "venuePreference"
	FieldExpectedAttendeesMax      FieldKey = "expectedAttendeesMax"
	FieldBudgetMin                 FieldKey = "budgetMin"
	FieldBudgetMax                 FieldKey = "budgetMax"
	FieldBudgetPreference          FieldKey = "budgetPreference"
	FieldSuburb                    FieldKey = "suburb"
	FieldState                     FieldKey = "state"
	FieldPreferredServiceDate      FieldKey = "preferredServiceDate"
	FieldDateFlexibility           FieldKey = "dateFlexibility"
	FieldCulturalFaithRequirements FieldKey = "culturalFaithRequirements"
	FieldUrgency                   FieldKey = "urgency"
	FieldAddOns                    FieldKey = "addOns"
	FieldNotes                     FieldKey = "notes"
)

// AnswerState distinguishes a provided value from an explicit skip. A field
// that was never written does not appear in CollectedAnswers at all, which is
// the "unasked" state.
type AnswerState string

const (
	AnswerProvided AnswerState = "answered"
	AnswerSkipped  AnswerState = "skipped"
)

// Answer is one collected intake value. Skipped answers carry no value.
type Answer struct {
	State AnswerState `json:"state"`
	Value string      `json:"value,omitempty"`
}

// CollectedAnswers maps field keys to their tagged answers. It grows
// monotonically during collection; tailoring may overwrite budget values.
type CollectedAnswers map[FieldKey]Answer

// Value returns the answered value for key. Skipped and unasked fields
// report ok=false.
func (a CollectedAnswers) Value(key FieldKey) (string, bool) {
	ans, ok := a[key]
	if !ok || ans.State != AnswerProvided || ans.Value == "" {
		return "", false
	}
	return ans.Value, true
}

// Written reports whether the key was ever recorded, answered or skipped.
func (a CollectedAnswers) Written(key FieldKey) bool {
	_, ok := a[key]
	return ok
}

// Clone returns an independent copy so turn processing never mutates the
// caller's snapshot.
func (a CollectedAnswers) Clone() CollectedAnswers {
	out := make(CollectedAnswers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// ConversationState is the persisted intake state for one case.
//
// Storage model (DynamoDB):
//   - PK: case_id
//
// Invariant: in COLLECTING mode PendingFieldKey is the next unanswered field
// in schema order (nil only before the first question is asked); in
// GENERATED mode it is nil and all hard-required fields are collected.
type ConversationState struct {
	CaseID          string           `json:"case_id"`
	Mode            IntakeMode       `json:"mode"`
	Collected       CollectedAnswers `json:"collected"`
	PendingFieldKey *FieldKey        `json:"pending_field_key,omitempty"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// NewConversationState returns the pre-first-question state for a case.
func NewConversationState(caseID string) ConversationState {
	return ConversationState{
		CaseID:    caseID,
		Mode:      ModeCollecting,
		Collected: CollectedAnswers{},
	}
}

// ChatRole is a conversation message author.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is a single conversation turn as exchanged with callers.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}
