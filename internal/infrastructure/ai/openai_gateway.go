package ai

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"arborgold/internal/usecase/interfaces"
)

var ErrMissingOpenAIAPIKey = errors.New("missing OPENAI_API_KEY")

const (
	defaultModel = "gpt-4o-mini"
	historyCap   = 25
)

// OpenAIGateway implements the suggestion gateway over the OpenAI chat API.
//
// The gateway is advisory only: a response that cannot be parsed degrades
// into a zero-valued suggestion with a diagnostic instead of an error, so a
// flaky model never disturbs lifecycle state. Mock mode (AI_GATEWAY_MOCK)
// skips the external call entirely and is used by local dev and tests.

type OpenAIGateway struct {
	client   *openai.Client
	model    string
	mockMode bool
}

var _ interfaces.AIGateway = (*OpenAIGateway)(nil)

func NewOpenAIGateway(apiKey string) (*OpenAIGateway, error) {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}

	if isMockEnabled() {
		zap.L().Info("ai gateway mock mode enabled")
		return &OpenAIGateway{model: model, mockMode: true}, nil
	}

	if apiKey == "" {
		return nil, ErrMissingOpenAIAPIKey
	}
	return &OpenAIGateway{client: openai.NewClient(apiKey), model: model}, nil
}

// NewMockGateway builds a gateway that never leaves the process. Used when no
// API key is configured and by tests.
func NewMockGateway() *OpenAIGateway {
	return &OpenAIGateway{model: defaultModel, mockMode: true}
}

func (g *OpenAIGateway) SuggestEstimate(ctx context.Context, req interfaces.EstimateSuggestionRequest) (interfaces.EstimateSuggestion, error) {
	if len(req.History) > historyCap {
		req.History = req.History[:historyCap]
	}

	if g.mockMode {
		return interfaces.EstimateSuggestion{Rationale: "mock suggestion"}, nil
	}

	details, _ := json.MarshalIndent(req.JobDetails, "", "  ")
	history, _ := json.MarshalIndent(req.History, "", "  ")
	text, err := g.complete(ctx,
		"You are an estimator for a small tree service. "+
			"Give realistic scope/hazards/equipment and a price suggestion. "+
			"Output STRICT JSON with keys: suggested_price, scope, hazards, equipment, rationale.",
		"NEW JOB DETAILS:\n"+string(details)+
			"\n\nHISTORICAL JOBS (for pricing context):\n"+string(history)+
			"\n\nReturn STRICT JSON only.",
	)
	if err != nil {
		return interfaces.EstimateSuggestion{}, err
	}

	var out interfaces.EstimateSuggestion
	if jerr := json.Unmarshal([]byte(text), &out); jerr != nil {
		zap.S().Warnw("ai estimate suggestion unparseable", "err", jerr)
		return interfaces.EstimateSuggestion{
			Rationale: "Failed to parse model output. Raw:\n" + truncate(text, 1000),
		}, nil
	}
	return out, nil
}

func (g *OpenAIGateway) StructureNotes(ctx context.Context, rawNotes string) (interfaces.StructuredNotes, error) {
	if g.mockMode {
		return interfaces.StructuredNotes{Scope: rawNotes}, nil
	}

	text, err := g.complete(ctx,
		"Turn arborist job notes into structured fields. "+
			"Output STRICT JSON with keys: scope, hazards, equipment, questions_to_confirm.",
		rawNotes,
	)
	if err != nil {
		return interfaces.StructuredNotes{}, err
	}

	var out interfaces.StructuredNotes
	if jerr := json.Unmarshal([]byte(text), &out); jerr != nil {
		zap.S().Warnw("ai notes unparseable", "err", jerr)
		return interfaces.StructuredNotes{QuestionsToConfirm: []string{}, Raw: text}, nil
	}
	return out, nil
}

func (g *OpenAIGateway) SuggestSchedule(ctx context.Context, req interfaces.ScheduleSuggestionRequest) (interfaces.ScheduleSuggestion, error) {
	if g.mockMode {
		return interfaces.ScheduleSuggestion{Reasoning: "mock suggestion"}, nil
	}

	payload, _ := json.MarshalIndent(req, "", "  ")
	text, err := g.complete(ctx,
		"You are a dispatcher for a tree service. Suggest a schedule date and crew. "+
			"Output STRICT JSON with keys: suggested_date, suggested_crew, reasoning.",
		string(payload),
	)
	if err != nil {
		return interfaces.ScheduleSuggestion{}, err
	}

	var out interfaces.ScheduleSuggestion
	if jerr := json.Unmarshal([]byte(text), &out); jerr != nil {
		zap.S().Warnw("ai schedule suggestion unparseable", "err", jerr)
		return interfaces.ScheduleSuggestion{Reasoning: text}, nil
	}
	return out, nil
}

func (g *OpenAIGateway) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func isMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("AI_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
