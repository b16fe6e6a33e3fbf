package request

import (
	"errors"
	"testing"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

func TestTurnRequest_ToMessages(t *testing.T) {
	r := TurnRequest{Messages: []ChatMessageRequest{
		{Role: " User ", Content: "hello"},
		{Role: "ASSISTANT", Content: "What is the full legal name of the deceased?"},
	}}

	messages, err := r.ToMessages()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != entities.RoleUser || messages[0].Content != "hello" {
		t.Fatalf("unexpected first message: %+v", messages[0])
	}
	if messages[1].Role != entities.RoleAssistant {
		t.Fatalf("unexpected second message: %+v", messages[1])
	}
}

func TestTurnRequest_ToMessagesEmpty(t *testing.T) {
	_, err := TurnRequest{}.ToMessages()
	if !errors.Is(err, ErrEmptyMessages) {
		t.Fatalf("expected ErrEmptyMessages, got %v", err)
	}
}

func TestTurnRequest_ToMessagesInvalidRole(t *testing.T) {
	r := TurnRequest{Messages: []ChatMessageRequest{{Role: "system", Content: "x"}}}
	_, err := r.ToMessages()
	if !errors.Is(err, ErrInvalidChatRole) {
		t.Fatalf("expected ErrInvalidChatRole, got %v", err)
	}
}

func TestGenerateRequest_ToConstraints(t *testing.T) {
	if got := (GenerateRequest{}).ToConstraints(); got != nil {
		t.Fatalf("expected nil constraints, got %+v", got)
	}

	count := 80
	flowers := true
	r := GenerateRequest{Constraints: &PricingConstraintsRequest{AttendeeCount: &count, Flowers: &flowers}}
	got := r.ToConstraints()
	if got == nil || got.AttendeeCount == nil || *got.AttendeeCount != 80 {
		t.Fatalf("unexpected constraints: %+v", got)
	}
	if got.Flowers == nil || !*got.Flowers {
		t.Fatalf("expected flowers override: %+v", got)
	}
	if got.VenueTier != nil || got.TransportCount != nil {
		t.Fatalf("unset fields must stay nil: %+v", got)
	}
}

func TestEmailQuoteRequest_ResolveTo(t *testing.T) {
	if got := (EmailQuoteRequest{To: " mary@example.com "}).ResolveTo(); got != "mary@example.com" {
		t.Fatalf("expected trimmed address, got %q", got)
	}
	if got := (EmailQuoteRequest{}).ResolveTo(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
