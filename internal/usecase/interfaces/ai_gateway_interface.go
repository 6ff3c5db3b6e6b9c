package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// EstimateSuggestionRequest carries the structured job details plus pricing
// history handed to the model (capped at 25 entries by the caller).
type EstimateSuggestionRequest struct {
	JobDetails map[string]any       `json:"job_details"`
	History    []HistoricalEstimate `json:"history"`
}

type HistoricalEstimate struct {
	Scope          string          `json:"scope"`
	Hazards        string          `json:"hazards"`
	Equipment      string          `json:"equipment"`
	FinalPrice     decimal.Decimal `json:"final_price"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
}

type EstimateSuggestion struct {
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
	Scope          string          `json:"scope"`
	Hazards        string          `json:"hazards"`
	Equipment      string          `json:"equipment"`
	Rationale      string          `json:"rationale"`
}

type StructuredNotes struct {
	Scope              string   `json:"scope"`
	Hazards            string   `json:"hazards"`
	Equipment          string   `json:"equipment"`
	QuestionsToConfirm []string `json:"questions_to_confirm"`
	Raw                string   `json:"raw,omitempty"`
}

type ScheduleSuggestionRequest struct {
	Estimate        map[string]any `json:"estimate"`
	PreferredWindow string         `json:"preferred_window"`
	CrewOptions     []string       `json:"crew_options"`
}

type ScheduleSuggestion struct {
	SuggestedDate string `json:"suggested_date"`
	SuggestedCrew string `json:"suggested_crew"`
	Reasoning     string `json:"reasoning"`
}

// AIGateway abstracts the external suggestion model. Implementations return
// best-effort structured data: a malformed model response degrades into a
// zero-valued suggestion carrying a diagnostic, not an error. A returned
// error means the service itself was unreachable; callers absorb that into
// the same fallback shape and never let it touch lifecycle state.
type AIGateway interface {
	SuggestEstimate(ctx context.Context, req EstimateSuggestionRequest) (EstimateSuggestion, error)
	StructureNotes(ctx context.Context, rawNotes string) (StructuredNotes, error)
	SuggestSchedule(ctx context.Context, req ScheduleSuggestionRequest) (ScheduleSuggestion, error)
}
