package agents

import (
	"strings"
	"testing"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

func strPtr(s string) *string { return &s }

func TestRunFamilyConcentration_Defaults(t *testing.T) {
	prefs := RunFamilyConcentration(entities.Case{})

	if len(prefs.Preferences) != 1 || prefs.Preferences[0] != "Balanced service and value" {
		t.Fatalf("expected the balanced default, got %+v", prefs.Preferences)
	}
	if len(prefs.Constraints) != 0 {
		t.Fatalf("expected no constraints, got %+v", prefs.Constraints)
	}
	if prefs.ToneGuidance != "Professional, calm, and supportive." {
		t.Fatalf("unexpected tone: %q", prefs.ToneGuidance)
	}
}

func TestRunFamilyConcentration_ReligiousPremium(t *testing.T) {
	c := entities.Case{
		ServiceStyle:     strPtr("religious"),
		BudgetPreference: strPtr("premium"),
		Notes:            strPtr("Family wants traditional floral arrangements"),
	}
	prefs := RunFamilyConcentration(c)

	want := []string{
		"Traditional or religious observance",
		"Premium quality and inclusions",
		"Floral tributes",
		"Traditional values",
	}
	if len(prefs.Preferences) != len(want) {
		t.Fatalf("expected %d preferences, got %+v", len(want), prefs.Preferences)
	}
	for i, p := range want {
		if prefs.Preferences[i] != p {
			t.Fatalf("preference %d: expected %q, got %q", i, p, prefs.Preferences[i])
		}
	}
	if !strings.Contains(prefs.ToneGuidance, "faith practices") {
		t.Fatalf("religious style must shape the tone, got %q", prefs.ToneGuidance)
	}
}

func TestRunFamilyConcentration_Constraints(t *testing.T) {
	c := entities.Case{
		CulturalFaithRequirements: strPtr("Islamic burial"),
		Urgency:                   strPtr("within 24h"),
		DateFlexibility:           strPtr("fixed"),
	}
	prefs := RunFamilyConcentration(c)

	want := []string{
		"Cultural/faith: Islamic burial",
		"Urgency: within 24h",
		"Fixed service date",
	}
	if len(prefs.Constraints) != len(want) {
		t.Fatalf("expected %d constraints, got %+v", len(want), prefs.Constraints)
	}
	for i, cst := range want {
		if prefs.Constraints[i] != cst {
			t.Fatalf("constraint %d: expected %q, got %q", i, cst, prefs.Constraints[i])
		}
	}
}

func TestRunFamilyConcentration_CelebrationTone(t *testing.T) {
	prefs := RunFamilyConcentration(entities.Case{ServiceStyle: strPtr("celebration")})

	if prefs.Preferences[0] != "Celebration of life tone" {
		t.Fatalf("expected celebration preference, got %+v", prefs.Preferences)
	}
	if prefs.ToneGuidance != "Warm, celebratory, and personal." {
		t.Fatalf("unexpected tone: %q", prefs.ToneGuidance)
	}
}
