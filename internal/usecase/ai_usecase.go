package usecase

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"arborgold/internal/usecase/interfaces"
)

const suggestionHistoryLimit = 25

// IAIUseCase serves the advisory suggestion endpoints. Gateway failures are
// absorbed into fallback payloads here; the lifecycle layer never sees them.
type IAIUseCase interface {
	SuggestEstimate(ctx context.Context, jobDetails map[string]any) (interfaces.EstimateSuggestion, error)
	StructureNotes(ctx context.Context, rawNotes string) (interfaces.StructuredNotes, error)
	SuggestSchedule(ctx context.Context, estimateID snowflake.ID, preferredWindow string, crewOptions []string) (interfaces.ScheduleSuggestion, error)
}

type AIUseCase struct {
	uow     interfaces.UnitOfWork
	gateway interfaces.AIGateway
}

var _ IAIUseCase = (*AIUseCase)(nil)

func NewAIUseCase(uow interfaces.UnitOfWork, gateway interfaces.AIGateway) *AIUseCase {
	return &AIUseCase{uow: uow, gateway: gateway}
}

// SuggestEstimate feeds the model the new job details plus recent priced
// estimates for pricing context.
func (u *AIUseCase) SuggestEstimate(ctx context.Context, jobDetails map[string]any) (interfaces.EstimateSuggestion, error) {
	recent, err := u.uow.Estimates().ListRecentPriced(ctx, suggestionHistoryLimit)
	if err != nil {
		return interfaces.EstimateSuggestion{}, err
	}

	history := make([]interfaces.HistoricalEstimate, 0, len(recent))
	for _, e := range recent {
		history = append(history, interfaces.HistoricalEstimate{
			Scope:          e.Scope,
			Hazards:        e.Hazards,
			Equipment:      e.Equipment,
			FinalPrice:     e.Total,
			SuggestedPrice: e.SuggestedPrice,
		})
	}

	out, err := u.gateway.SuggestEstimate(ctx, interfaces.EstimateSuggestionRequest{
		JobDetails: jobDetails,
		History:    history,
	})
	if err != nil {
		zap.S().Warnw("estimate suggestion unavailable", "err", err)
		return interfaces.EstimateSuggestion{Rationale: "Suggestion service unavailable: " + err.Error()}, nil
	}
	return out, nil
}

func (u *AIUseCase) StructureNotes(ctx context.Context, rawNotes string) (interfaces.StructuredNotes, error) {
	out, err := u.gateway.StructureNotes(ctx, rawNotes)
	if err != nil {
		zap.S().Warnw("notes structuring unavailable", "err", err)
		return interfaces.StructuredNotes{QuestionsToConfirm: []string{}, Raw: rawNotes}, nil
	}
	return out, nil
}

func (u *AIUseCase) SuggestSchedule(ctx context.Context, estimateID snowflake.ID, preferredWindow string, crewOptions []string) (interfaces.ScheduleSuggestion, error) {
	e, err := u.uow.Estimates().GetByID(ctx, estimateID)
	if err != nil {
		return interfaces.ScheduleSuggestion{}, err
	}
	if e.ID == 0 {
		return interfaces.ScheduleSuggestion{}, ErrEstimateNotFound
	}

	out, err := u.gateway.SuggestSchedule(ctx, interfaces.ScheduleSuggestionRequest{
		Estimate: map[string]any{
			"id":              e.ID,
			"scope":           e.Scope,
			"hazards":         e.Hazards,
			"equipment":       e.Equipment,
			"suggested_price": e.SuggestedPrice,
			"final_price":     e.Total,
			"status":          e.Status,
		},
		PreferredWindow: preferredWindow,
		CrewOptions:     crewOptions,
	})
	if err != nil {
		zap.S().Warnw("schedule suggestion unavailable", "err", err)
		return interfaces.ScheduleSuggestion{Reasoning: "Suggestion service unavailable: " + err.Error()}, nil
	}
	return out, nil
}
