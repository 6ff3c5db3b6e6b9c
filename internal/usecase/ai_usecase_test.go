package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"arborgold/internal/usecase/interfaces"
	mock_interfaces "arborgold/internal/usecase/interfaces/mocks"
)

func TestAIUseCase_SuggestEstimate(t *testing.T) {
	t.Run("passes pricing history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uow, node := newTestUoW(t)
		gateway := mock_interfaces.NewMockAIGateway(ctrl)
		estimates := NewEstimateUseCase(uow, node)
		uc := NewAIUseCase(uow, gateway)
		customer := seedCustomer(t, uow, node)
		ctx := context.Background()

		if _, err := estimates.Create(ctx, CreateEstimateInput{
			CustomerID: customer.ID,
			Scope:      "Remove two oaks",
			Total:      dec("500"),
		}); err != nil {
			t.Fatalf("create estimate: %v", err)
		}

		want := interfaces.EstimateSuggestion{SuggestedPrice: dec("480"), Rationale: "comparable removals"}
		gateway.EXPECT().SuggestEstimate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.EstimateSuggestionRequest) (interfaces.EstimateSuggestion, error) {
				if len(req.History) != 1 {
					t.Fatalf("expected 1 historical estimate, got %d", len(req.History))
				}
				if !req.History[0].FinalPrice.Equal(dec("500")) {
					t.Fatalf("expected final price 500, got %s", req.History[0].FinalPrice)
				}
				return want, nil
			},
		)

		got, err := uc.SuggestEstimate(ctx, map[string]any{"scope": "Remove a maple"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.SuggestedPrice.Equal(want.SuggestedPrice) {
			t.Fatalf("expected %s, got %s", want.SuggestedPrice, got.SuggestedPrice)
		}
	})

	t.Run("gateway failure degrades to fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uow, _ := newTestUoW(t)
		gateway := mock_interfaces.NewMockAIGateway(ctrl)
		uc := NewAIUseCase(uow, gateway)

		gateway.EXPECT().SuggestEstimate(gomock.Any(), gomock.Any()).
			Return(interfaces.EstimateSuggestion{}, errors.New("timeout"))

		got, err := uc.SuggestEstimate(context.Background(), map[string]any{})
		if err != nil {
			t.Fatalf("gateway failures must not surface, got %v", err)
		}
		if !strings.Contains(got.Rationale, "unavailable") {
			t.Fatalf("expected unavailable rationale, got %q", got.Rationale)
		}
		if !got.SuggestedPrice.IsZero() {
			t.Fatalf("expected zero suggested price in fallback, got %s", got.SuggestedPrice)
		}
	})
}

func TestAIUseCase_StructureNotesFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uow, _ := newTestUoW(t)
	gateway := mock_interfaces.NewMockAIGateway(ctrl)
	uc := NewAIUseCase(uow, gateway)

	gateway.EXPECT().StructureNotes(gomock.Any(), "oak over garage, lines nearby").
		Return(interfaces.StructuredNotes{}, errors.New("502"))

	got, err := uc.StructureNotes(context.Background(), "oak over garage, lines nearby")
	if err != nil {
		t.Fatalf("gateway failures must not surface, got %v", err)
	}
	if got.Raw != "oak over garage, lines nearby" {
		t.Fatalf("expected raw notes preserved, got %q", got.Raw)
	}
	if got.QuestionsToConfirm == nil {
		t.Fatalf("expected empty slice, not nil")
	}
}

func TestAIUseCase_SuggestSchedule(t *testing.T) {
	t.Run("unknown estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uow, node := newTestUoW(t)
		gateway := mock_interfaces.NewMockAIGateway(ctrl)
		uc := NewAIUseCase(uow, gateway)

		_, err := uc.SuggestSchedule(context.Background(), node.Generate(), "next week", nil)
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uow, node := newTestUoW(t)
		gateway := mock_interfaces.NewMockAIGateway(ctrl)
		estimates := NewEstimateUseCase(uow, node)
		uc := NewAIUseCase(uow, gateway)
		customer := seedCustomer(t, uow, node)
		ctx := context.Background()

		e, err := estimates.Create(ctx, CreateEstimateInput{CustomerID: customer.ID, Scope: "Prune elms"})
		if err != nil {
			t.Fatalf("create estimate: %v", err)
		}

		want := interfaces.ScheduleSuggestion{SuggestedDate: "2026-09-08", SuggestedCrew: "Evergreen Team"}
		gateway.EXPECT().SuggestSchedule(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.ScheduleSuggestionRequest) (interfaces.ScheduleSuggestion, error) {
				if req.Estimate["scope"] != "Prune elms" {
					t.Fatalf("expected estimate scope in request, got %v", req.Estimate["scope"])
				}
				if req.PreferredWindow != "next week" {
					t.Fatalf("expected preferred window, got %q", req.PreferredWindow)
				}
				return want, nil
			},
		)

		got, err := uc.SuggestSchedule(ctx, e.ID, "next week", []string{"Evergreen Team"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.SuggestedCrew != want.SuggestedCrew {
			t.Fatalf("expected %q, got %q", want.SuggestedCrew, got.SuggestedCrew)
		}
	})
}
