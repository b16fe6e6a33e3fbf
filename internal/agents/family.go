package agents

import (
	"fmt"
	"strings"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

// RunFamilyConcentration derives family preferences, constraints and a tone
// guidance line from the case's stated style, budget preference and notes.
func RunFamilyConcentration(c entities.Case) entities.FamilyPreferences {
	var notesParts []string
	if c.Notes != nil {
		notesParts = append(notesParts, *c.Notes)
	}
	if c.InternalNotes != nil {
		notesParts = append(notesParts, *c.InternalNotes)
	}
	notes := strings.ToLower(strings.Join(notesParts, " "))

	style := "non-religious"
	if c.ServiceStyle != nil {
		style = *c.ServiceStyle
	}
	pref := "balanced"
	if c.BudgetPreference != nil {
		pref = *c.BudgetPreference
	}

	var preferences []string
	if style == "religious" {
		preferences = append(preferences, "Traditional or religious observance")
	}
	if style == "celebration" {
		preferences = append(preferences, "Celebration of life tone")
	}
	if pref == "premium" {
		preferences = append(preferences, "Premium quality and inclusions")
	}
	if pref == "minimal" {
		preferences = append(preferences, "Minimal, essential-only approach")
	}
	if strings.Contains(notes, "floral") || strings.Contains(notes, "flower") {
		preferences = append(preferences, "Floral tributes")
	}
	if strings.Contains(notes, "traditional") {
		preferences = append(preferences, "Traditional values")
	}
	if len(preferences) == 0 {
		preferences = append(preferences, "Balanced service and value")
	}

	var constraints []string
	if c.CulturalFaithRequirements != nil {
		constraints = append(constraints, fmt.Sprintf("Cultural/faith: %s", *c.CulturalFaithRequirements))
	}
	if c.Urgency != nil {
		constraints = append(constraints, fmt.Sprintf("Urgency: %s", *c.Urgency))
	}
	if c.DateFlexibility != nil && *c.DateFlexibility == "fixed" {
		constraints = append(constraints, "Fixed service date")
	}

	tone := "Professional, calm, and supportive."
	switch style {
	case "religious":
		tone = "Respectful, traditional, and considerate of faith practices."
	case "celebration":
		tone = "Warm, celebratory, and personal."
	}

	return entities.FamilyPreferences{
		Preferences:  preferences,
		Constraints:  constraints,
		ToneGuidance: tone,
	}
}
