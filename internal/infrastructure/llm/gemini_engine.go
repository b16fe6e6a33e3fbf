package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	"github.com/Irtizzasmartlog/AIFuneral/internal/intake"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase/interfaces"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")

const defaultGeminiModel = "gemini-1.5-flash"

const systemPrompt = "You are a compassionate funeral intake assistant for an Australian funeral home. " +
	"Rephrase the given assistant message in a warm, respectful tone. " +
	"Keep every question, number and dollar amount exactly as given. " +
	"Reply with the rephrased message only, no preamble."

// GeminiEngine wraps the deterministic intake engine with a Gemini-phrased
// conversational layer. All state transitions, parsing and package
// generation stay in the inner engine; Gemini only rewords the assistant
// text. Any API failure or unusable reply degrades to the inner engine's
// wording, so a Gemini outage never blocks intake.
type GeminiEngine struct {
	inner     *intake.Engine
	client    *genai.Client
	modelName string
}

var _ interfaces.IConversationEngine = (*GeminiEngine)(nil)

func NewGeminiEngine(ctx context.Context, inner *intake.Engine) (*GeminiEngine, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Printf("[intake][gemini] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		log.Printf("[intake][gemini] failed creating client err=%v", err)
		return nil, err
	}

	modelName := strings.TrimPrefix(strings.TrimSpace(os.Getenv("GEMINI_MODEL")), "models/")
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	log.Printf("[intake][gemini] client initialized model=%s", modelName)

	return &GeminiEngine{inner: inner, client: client, modelName: modelName}, nil
}

func (e *GeminiEngine) RunTurn(ctx context.Context, caseID string, messages []entities.ChatMessage, state entities.ConversationState) (intake.TurnResult, entities.ConversationState, error) {
	result, nextState, err := e.inner.RunTurn(ctx, caseID, messages, state)
	if err != nil {
		return result, nextState, err
	}

	rephrased, err := e.rephrase(ctx, messages, result.AssistantText)
	if err != nil {
		log.Printf("[intake][gemini] rephrase failed case_id=%s err=%v", caseID, err)
		return result, nextState, nil
	}
	if rephrased != "" {
		result.AssistantText = rephrased
	}
	return result, nextState, nil
}

func (e *GeminiEngine) rephrase(ctx context.Context, messages []entities.ChatMessage, text string) (string, error) {
	model := e.client.GenerativeModel(e.modelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	model.SetMaxOutputTokens(2048)

	chat := model.StartChat()
	chat.History = toGeminiHistory(messages)

	resp, err := chat.SendMessage(ctx, genai.Text(fmt.Sprintf("Message to rephrase:\n%s", text)))
	if err != nil {
		return "", err
	}
	return extractText(resp), nil
}

func toGeminiHistory(messages []entities.ChatMessage) []*genai.Content {
	history := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		role := "user"
		if m.Role == entities.RoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	// Gemini requires chat history to open with a user turn.
	if len(history) > 0 && history[0].Role == "model" {
		opener := &genai.Content{Role: "user", Parts: []genai.Part{genai.Text("Begin the funeral intake questionnaire.")}}
		history = append([]*genai.Content{opener}, history...)
	}
	return history
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(b.String())
}
