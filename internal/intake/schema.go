package intake

import "github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"

// FieldKind selects the parsing heuristic for a field's answers.

type FieldKind string

const (
	KindText          FieldKind = "text"
	KindDate          FieldKind = "date"
	KindNumber        FieldKind = "number"
	KindServiceType   FieldKind = "service_type"
	KindState         FieldKind = "state"
	KindAddOns        FieldKind = "add_ons"
	KindPreferredName FieldKind = "preferred_name"
)

// Field is one intake question. The ordered fields slice defines traversal
// order; both are fixed at compile time.
type Field struct {
	Key      entities.FieldKey
	Prompt   string
	Required bool
	Kind     FieldKind
}

var fields = []Field{
	{Key: entities.FieldDeceasedFullName, Prompt: "What is the full legal name of the deceased?", Required: true, Kind: KindText},
	{Key: entities.FieldDeceasedDOB, Prompt: "Date of birth? (DD/MM/YYYY or skip)", Kind: KindDate},
	{Key: entities.FieldDeceasedDOD, Prompt: "Date of passing? (DD/MM/YYYY)", Kind: KindDate},
	{Key: entities.FieldDeceasedPreferredName, Prompt: "Preferred name for public use? (optional; say 'same' to use legal name)", Kind: KindPreferredName},
	{Key: entities.FieldNextOfKinName, Prompt: "Full name of the primary decision-maker (next of kin)?", Required: true, Kind: KindText},
	{Key: entities.FieldNextOfKinRelationship, Prompt: "Their relationship to the deceased?", Kind: KindText},
	{Key: entities.FieldNextOfKinPhone, Prompt: "Best phone number for the primary contact?", Kind: KindText},
	{Key: entities.FieldNextOfKinEmail, Prompt: "Email address for the primary contact?", Required: true, Kind: KindText},
	{Key: entities.FieldServiceType, Prompt: "Service type: burial or cremation?", Required: true, Kind: KindServiceType},
	{Key: entities.FieldServiceStyle, Prompt: "Service style: religious, non-religious, or celebration?", Kind: KindText},
	{Key: entities.FieldVenuePreference, Prompt: "Venue preference: chapel, church, graveside, mosque, or other?", Kind: KindText},
	{Key: entities.FieldExpectedAttendeesMax, Prompt: "Rough expected number of attendees? (e.g. 50)", Kind: KindNumber},
	{Key: entities.FieldBudgetMin, Prompt: "Budget minimum in AUD? (e.g. 5000)", Required: true, Kind: KindNumber},
	{Key: entities.FieldBudgetMax, Prompt: "Budget maximum in AUD? (e.g. 15000)", Required: true, Kind: KindNumber},
	{Key: entities.FieldBudgetPreference, Prompt: "Budget preference: minimal, balanced, or premium?", Kind: KindText},
	{Key: entities.FieldSuburb, Prompt: "Suburb or city for the service?", Required: true, Kind: KindText},
	{Key: entities.FieldState, Prompt: "State? (NSW, VIC, QLD, WA, SA, TAS, ACT, NT)", Required: true, Kind: KindState},
	{Key: entities.FieldPreferredServiceDate, Prompt: "Preferred service date? (DD/MM/YYYY or skip)", Kind: KindDate},
	{Key: entities.FieldDateFlexibility, Prompt: "Date flexibility: fixed, +/- 2 days, or flexible?", Kind: KindText},
	{Key: entities.FieldCulturalFaithRequirements, Prompt: "Any cultural or religious requirements? (e.g. Islamic burial, Catholic rite)", Kind: KindText},
	{Key: entities.FieldUrgency, Prompt: "Urgency: within 24h, within 48h, within 72h, or standard?", Kind: KindText},
	{Key: entities.FieldAddOns, Prompt: "Add-ons needed? List any: invitations, livestream, flowers, printed sheets, slideshow, catering, memorial page (or 'none')", Kind: KindAddOns},
	{Key: entities.FieldNotes, Prompt: "Any other notes or special requests? (or 'no')", Kind: KindText},
}

// hardRequiredKeys is the minimal subset whose presence allows the
// COLLECTING -> GENERATED transition. Distinct from per-field Required flags.
var hardRequiredKeys = []entities.FieldKey{
	entities.FieldDeceasedFullName,
	entities.FieldNextOfKinName,
	entities.FieldNextOfKinEmail,
	entities.FieldServiceType,
	entities.FieldBudgetMin,
	entities.FieldBudgetMax,
	entities.FieldSuburb,
	entities.FieldState,
}

// Fields returns the ordered schema.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// FirstField returns the opening question.
func FirstField() Field {
	return fields[0]
}

// FieldFor resolves a field by key.
func FieldFor(key entities.FieldKey) (Field, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// NextMissingField scans fields strictly after afterKey (from the start when
// afterKey is nil) and returns the first still-missing one: a required field
// with no answered value, or an optional field that was never written.
// Skipped optional fields count as written, so they are never re-asked.
func NextMissingField(collected entities.CollectedAnswers, afterKey *entities.FieldKey) *Field {
	start := 0
	if afterKey != nil {
		for i, f := range fields {
			if f.Key == *afterKey {
				start = i + 1
				break
			}
		}
	}
	for i := start; i < len(fields); i++ {
		f := fields[i]
		if f.Required {
			if _, ok := collected.Value(f.Key); !ok {
				out := f
				return &out
			}
			continue
		}
		if !collected.Written(f.Key) {
			out := f
			return &out
		}
	}
	return nil
}

// HardRequiredKeys returns the generation-gate subset in schema order.
func HardRequiredKeys() []entities.FieldKey {
	out := make([]entities.FieldKey, len(hardRequiredKeys))
	copy(out, hardRequiredKeys)
	return out
}

// HasHardRequired reports whether every generation-gate field has an
// answered, non-blank value.
func HasHardRequired(collected entities.CollectedAnswers) bool {
	for _, k := range hardRequiredKeys {
		if _, ok := collected.Value(k); !ok {
			return false
		}
	}
	return true
}
