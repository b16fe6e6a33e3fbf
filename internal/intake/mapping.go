package intake

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

// CaseAttributesFromAnswers maps collected answers onto the case-attribute
// record the composer and agents consume. This is the single translation
// point between the conversation's answer shape and the persisted case:
// budgets convert from whole AUD to cents here and nowhere else.
func CaseAttributesFromAnswers(caseID string, a entities.CollectedAnswers) entities.Case {
	c := entities.Case{ID: caseID, Status: entities.CaseStatusIntake}

	c.DeceasedFullName = answeredString(a, entities.FieldDeceasedFullName)
	c.DeceasedPreferredName = answeredString(a, entities.FieldDeceasedPreferredName)
	c.DeceasedDOB = answeredDate(a, entities.FieldDeceasedDOB)
	c.DeceasedDOD = answeredDate(a, entities.FieldDeceasedDOD)
	c.NextOfKinName = answeredString(a, entities.FieldNextOfKinName)
	c.NextOfKinRelationship = answeredString(a, entities.FieldNextOfKinRelationship)
	c.NextOfKinPhone = answeredString(a, entities.FieldNextOfKinPhone)
	c.NextOfKinEmail = answeredString(a, entities.FieldNextOfKinEmail)
	c.ServiceType = answeredString(a, entities.FieldServiceType)
	c.ServiceStyle = answeredString(a, entities.FieldServiceStyle)
	c.VenuePreference = answeredString(a, entities.FieldVenuePreference)
	c.ExpectedAttendeesMax = answeredInt(a, entities.FieldExpectedAttendeesMax)
	c.BudgetMinCents = answeredDollarsAsCents(a, entities.FieldBudgetMin)
	c.BudgetMaxCents = answeredDollarsAsCents(a, entities.FieldBudgetMax)
	c.BudgetPreference = answeredString(a, entities.FieldBudgetPreference)
	c.Suburb = answeredString(a, entities.FieldSuburb)
	c.State = answeredString(a, entities.FieldState)
	c.PreferredServiceDate = answeredDate(a, entities.FieldPreferredServiceDate)
	c.DateFlexibility = answeredString(a, entities.FieldDateFlexibility)
	c.CulturalFaithRequirements = answeredString(a, entities.FieldCulturalFaithRequirements)
	c.Urgency = answeredString(a, entities.FieldUrgency)
	c.Notes = answeredString(a, entities.FieldNotes)
	c.AddOns = answeredAddOns(a)

	return c
}

func answeredString(a entities.CollectedAnswers, key entities.FieldKey) *string {
	v, ok := a.Value(key)
	if !ok {
		return nil
	}
	return &v
}

func answeredInt(a entities.CollectedAnswers, key entities.FieldKey) *int {
	v, ok := a.Value(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func answeredDollarsAsCents(a entities.CollectedAnswers, key entities.FieldKey) *int64 {
	v, ok := a.Value(key)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	cents := n * 100
	return &cents
}

// answeredDate only maps normalized ISO answers; lenient free-text date
// answers stay on the collected record but do not reach the typed case.
func answeredDate(a entities.CollectedAnswers, key entities.FieldKey) *time.Time {
	v, ok := a.Value(key)
	if !ok {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &t
}

func answeredAddOns(a entities.CollectedAnswers) *entities.AddOnFlags {
	v, ok := a.Value(entities.FieldAddOns)
	if !ok {
		return nil
	}
	var flags entities.AddOnFlags
	if err := json.Unmarshal([]byte(v), &flags); err != nil {
		return nil
	}
	return &flags
}
