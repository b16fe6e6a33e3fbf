package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Irtizzasmartlog/AIFuneral/internal/agents"
	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

const clarifySuffix = "Please provide a value."

const fallbackQuestion = "Is there anything else you would like to add?"

const generatedText = "I have enough information to generate three packages for you. " +
	"Here are your Essential, Standard, and Premium options. You can say things like " +
	"\"make it cheaper\" or \"add livestream\" to tailor further, or click Apply to Case " +
	"and Proceed to Packages when ready."

const tailoredText = "I have updated the packages based on your request. Review the " +
	"revised options below. You can ask for further changes or click Apply to Case and " +
	"Proceed to Packages when ready."

// TurnResult is the engine's answer to one conversation turn. Packages are
// only present in GENERATED mode; NextQuestion only in COLLECTING mode.
type TurnResult struct {
	AssistantText       string                   `json:"assistant_text"`
	Mode                entities.IntakeMode      `json:"mode"`
	NextQuestion        *string                  `json:"next_question,omitempty"`
	Collected           entities.CollectedAnswers `json:"collected"`
	Packages            []entities.Package       `json:"packages,omitempty"`
	Assumptions         []string                 `json:"assumptions,omitempty"`
	ComplianceChecklist []string                 `json:"compliance_checklist"`
	AddOnOptions        []entities.AddOnOption   `json:"add_ons"`
	Notes               string                   `json:"notes,omitempty"`
}

// Engine is the local deterministic intake conversation engine: a turn-based
// state machine that asks one schema question at a time, then composes
// packages once the hard-required subset is collected. It holds no state of
// its own; everything round-trips through the ConversationState passed in.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// RunTurn processes one conversation turn and returns the reply plus the
// state to persist. Parse failures on required fields re-ask the same
// question and leave the state untouched; there is no error path other than
// a malformed prior state, which is reset.
func (e *Engine) RunTurn(_ context.Context, caseID string, messages []entities.ChatMessage, state entities.ConversationState) (TurnResult, entities.ConversationState, error) {
	if state.CaseID == "" {
		state = entities.NewConversationState(caseID)
	}
	if state.Collected == nil {
		state.Collected = entities.CollectedAnswers{}
	}
	collected := state.Collected.Clone()
	userText := lastUserText(messages)

	if state.Mode == entities.ModeGenerated {
		return e.tailor(caseID, userText, state)
	}

	// Opening turn: nothing asked yet, nothing answered.
	if userText == "" && state.PendingFieldKey == nil {
		first := FirstField()
		key := first.Key
		state.PendingFieldKey = &key
		return collectingResult(first.Prompt, first.Prompt, collected), state, nil
	}

	pendingKey := FirstField().Key
	if state.PendingFieldKey != nil {
		pendingKey = *state.PendingFieldKey
	}
	field, ok := FieldFor(pendingKey)
	if !ok {
		field = FirstField()
	}

	value, parsed := ParseAnswer(field, userText)
	if !parsed && field.Required {
		// Re-ask the same question; no state mutation.
		return collectingResult(field.Prompt+" "+clarifySuffix, field.Prompt, collected), state, nil
	}
	if parsed {
		collected[field.Key] = entities.Answer{State: entities.AnswerProvided, Value: value}
	} else {
		// Optional and unusable input is an explicit skip so the field is
		// never re-asked.
		collected[field.Key] = entities.Answer{State: entities.AnswerSkipped}
	}

	if HasHardRequired(collected) {
		return e.generate(caseID, collected, state, generatedText, "Packages generated. Director review required.", []string{
			"Budget and location based on your stated preferences.",
			"Package tiers aligned with Australian funeral market norms.",
			"Director review required before sending to family.",
		})
	}

	if next := NextMissingField(collected, &field.Key); next != nil {
		key := next.Key
		state.Collected = collected
		state.PendingFieldKey = &key
		return collectingResult(next.Prompt, next.Prompt, collected), state, nil
	}

	// Schema exhausted but the hard-required gate still open: only possible
	// if the gate lists a field the schema does not require. Ask a generic
	// completion question rather than generating an underspecified quote.
	state.Collected = collected
	state.PendingFieldKey = nil
	return collectingResult(fallbackQuestion, fallbackQuestion, collected), state, nil
}

// tailor reinterprets post-generation free text as package adjustment
// directives and re-composes all three packages from the adjusted answers.
// Unrecognized text changes nothing and re-emits the current packages.
func (e *Engine) tailor(caseID, userText string, state entities.ConversationState) (TurnResult, entities.ConversationState, error) {
	collected := state.Collected.Clone()
	t := strings.ToLower(strings.TrimSpace(userText))

	flags := collectedAddOns(collected)
	budgetMin := collectedDollars(collected, entities.FieldBudgetMin, 2500)
	budgetMax := collectedDollars(collected, entities.FieldBudgetMax, 15000)

	if strings.Contains(t, "cheaper") || strings.Contains(t, "lower budget") || strings.Contains(t, "reduce") {
		budgetMax = int64(math.Round(float64(budgetMax) * 0.85))
		budgetMin = int64(math.Round(float64(budgetMin) * 0.9))
		collected[entities.FieldBudgetMin] = entities.Answer{State: entities.AnswerProvided, Value: strconv.FormatInt(budgetMin, 10)}
		collected[entities.FieldBudgetMax] = entities.Answer{State: entities.AnswerProvided, Value: strconv.FormatInt(budgetMax, 10)}
	}
	if strings.Contains(t, "livestream") {
		flags.Livestream = true
		writeAddOns(collected, flags)
	}
	if strings.Contains(t, "flower") || strings.Contains(t, "floral") {
		flags.Flowers = true
		writeAddOns(collected, flags)
	}

	return e.generate(caseID, collected, state, tailoredText, "Tailored packages. Director review required.", []string{
		"Tailoring applied per your request.",
		"Director review required before sending to family.",
	})
}

func (e *Engine) generate(caseID string, collected entities.CollectedAnswers, state entities.ConversationState, assistantText, notes string, assumptions []string) (TurnResult, entities.ConversationState, error) {
	caseAttrs := CaseAttributesFromAnswers(caseID, collected)
	guests := caseAttrs.EffectiveAttendeeCount(nil)
	flowers := caseAttrs.AddOns != nil && caseAttrs.AddOns.Flowers
	constraints := &entities.PricingConstraints{AttendeeCount: &guests, Flowers: &flowers}

	result := agents.RunPricingInvoice(caseAttrs, constraints)

	state.Mode = entities.ModeGenerated
	state.Collected = collected
	state.PendingFieldKey = nil

	return TurnResult{
		AssistantText:       assistantText,
		Mode:                entities.ModeGenerated,
		Collected:           collected,
		Packages:            result.Packages,
		Assumptions:         assumptions,
		ComplianceChecklist: complianceChecklist(caseAttrs),
		AddOnOptions:        AddOnCatalog(),
		Notes:               notes,
	}, state, nil
}

func collectingResult(assistantText, question string, collected entities.CollectedAnswers) TurnResult {
	q := question
	return TurnResult{
		AssistantText:       assistantText,
		Mode:                entities.ModeCollecting,
		NextQuestion:        &q,
		Collected:           collected,
		ComplianceChecklist: complianceChecklist(entities.Case{}),
		AddOnOptions:        AddOnCatalog(),
	}
}

func complianceChecklist(c entities.Case) []string {
	items := agents.RunDocumentationCompliance(c)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.DirectorReviewRequired {
			out = append(out, fmt.Sprintf("%s (Director review required)", item.Name))
		} else {
			out = append(out, item.Name)
		}
	}
	return out
}

// AddOnCatalog is the display-only add-on menu with indicative price ranges.
func AddOnCatalog() []entities.AddOnOption {
	return []entities.AddOnOption{
		{Name: "Invitations", PriceRange: "$200 to $600", Note: "Design and print"},
		{Name: "Livestream", PriceRange: "$400 to $800", Note: "Streaming service"},
		{Name: "Flowers", PriceRange: "$300 to $1,200", Note: "Tributes and arrangements"},
		{Name: "Printed sheets", PriceRange: "$150 to $400"},
		{Name: "Slideshow", PriceRange: "$150 to $400"},
		{Name: "Catering", PriceRange: "By quote", Note: "External"},
		{Name: "Memorial page", PriceRange: "$150 to $400"},
	}
}

func lastUserText(messages []entities.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == entities.RoleUser {
			return strings.TrimSpace(messages[i].Content)
		}
	}
	return ""
}

func collectedDollars(a entities.CollectedAnswers, key entities.FieldKey, def int64) int64 {
	v, ok := a.Value(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func collectedAddOns(a entities.CollectedAnswers) entities.AddOnFlags {
	var flags entities.AddOnFlags
	if v, ok := a.Value(entities.FieldAddOns); ok {
		_ = json.Unmarshal([]byte(v), &flags)
	}
	return flags
}

func writeAddOns(a entities.CollectedAnswers, flags entities.AddOnFlags) {
	b, err := json.Marshal(flags)
	if err != nil {
		return
	}
	a[entities.FieldAddOns] = entities.Answer{State: entities.AnswerProvided, Value: string(b)}
}
