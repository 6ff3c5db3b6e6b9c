package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"arborgold/internal/adapter/http/handlers/mocks"
	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase"
)

func estimateRouter(h *EstimateHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/estimates", h.CreateEstimate)
	r.GET("/v1/estimates/:id", h.GetEstimate)
	r.POST("/v1/estimates/:id/convert-to-job", h.ConvertToJob)
	r.POST("/v1/estimates/:id/approve-and-invoice", h.ApproveAndInvoice)
	return r
}

func TestEstimateHandler_CreateEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing customer id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"scope":"prune"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lead mismatch maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Estimate{}, usecase.ErrEstimateLeadMismatch)

		body := `{"customer_id":"1234","lead_id":"5678"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp["code"] != "CONSISTENCY_VIOLATION" {
			t.Fatalf("expected CONSISTENCY_VIOLATION, got %v", resp["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateEstimateInput{})).DoAndReturn(
			func(_ any, in usecase.CreateEstimateInput) (entities.Estimate, error) {
				if in.Scope != "Remove oak" || len(in.LineItems) != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Estimate{
					ID:         1234,
					CustomerID: in.CustomerID,
					Status:     entities.EstimateStatusDraft,
					Scope:      in.Scope,
					Total:      decimal.NewFromInt(750),
				}, nil
			},
		)

		body := `{"customer_id":"42","scope":"Remove oak","line_items":[{"name":"Tree removal","unit_price":750}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp["id"] != "1234" {
			t.Fatalf("expected id 1234, got %v", resp["id"])
		}
	})
}

func TestEstimateHandler_ConvertToJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/not-an-id/convert-to-job", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("estimate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().ConvertToJob(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Job{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/99/convert-to-job", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success creates job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().ConvertToJob(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Job{ID: 777, Status: entities.JobStatusScheduled, Total: decimal.NewFromInt(205)}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/99/convert-to-job", bytes.NewBufferString(`{"tasks":["Fell","Chip"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestEstimateHandler_ApproveAndInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().ApproveAndInvoice(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(entities.Invoice{ID: 555, Status: entities.InvoiceStatusUnpaid, Total: decimal.NewFromInt(225)}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/99/approve-and-invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp["id"] != "555" {
			t.Fatalf("expected invoice 555, got %v", resp["id"])
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := estimateRouter(NewEstimateHandler(uc))

		uc.EXPECT().ApproveAndInvoice(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Invoice{}, usecase.ErrEstimateNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates/99/approve-and-invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
