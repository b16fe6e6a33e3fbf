package entities

import (
	"encoding/json"
	"time"
)

// TaskCategory groups scheduling tasks for display.

type TaskCategory string

const (
	TaskCategoryVenue      TaskCategory = "venue"
	TaskCategoryLogistics  TaskCategory = "logistics"
	TaskCategoryCompliance TaskCategory = "compliance"
	TaskCategoryOther      TaskCategory = "other"
)

// SchedulingTask is one due-dated action item derived from the case.
type SchedulingTask struct {
	Title    string       `json:"title"`
	DueDate  *time.Time   `json:"due_date,omitempty"`
	Category TaskCategory `json:"category"`
}

// DocumentChecklistItem is one compliance document the director must review.
type DocumentChecklistItem struct {
	Name                   string `json:"name"`
	LinkPlaceholder        string `json:"link_placeholder"`
	DirectorReviewRequired bool   `json:"director_review_required"`
}

// FamilyPreferences is the family-concentration agent's output: derived
// preferences, hard constraints, and guidance on communication tone.
type FamilyPreferences struct {
	Preferences  []string `json:"preferences"`
	Constraints  []string `json:"constraints"`
	ToneGuidance string   `json:"tone_guidance"`
}

// AddOnOption is a display-only add-on suggestion with an indicative price
// range. Never used for pricing.
type AddOnOption struct {
	Name       string `json:"name"`
	PriceRange string `json:"price_range"`
	Note       string `json:"note,omitempty"`
}

// AgentRun records one agent invocation for audit.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (case_id-index): case_id
//
// Snapshots keep the raw JSON so a run's inputs and outputs can be replayed
// when a quote is disputed.
type AgentRun struct {
	ID             string          `json:"id"`
	CaseID         string          `json:"case_id"`
	AgentName      string          `json:"agent_name"`
	InputSnapshot  json.RawMessage `json:"input_snapshot,omitempty"`
	OutputSnapshot json.RawMessage `json:"output_snapshot,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
