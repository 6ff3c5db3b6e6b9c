package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"arborgold/internal/domain/entities"
)

func TestEstimateUseCase_CreateDerivesTotal(t *testing.T) {
	uow, node := newTestUoW(t)
	uc := NewEstimateUseCase(uow, node)
	customer := seedCustomer(t, uow, node)

	e, err := uc.Create(context.Background(), CreateEstimateInput{
		CustomerID: customer.ID,
		Tax:        dec("10"),
		Discount:   dec("5"),
		Total:      dec("9999"), // ignored once line items exist
		LineItems: []LineItemInput{
			{Name: "Tree removal", Qty: dec("1"), UnitPrice: dec("100")},
			{Name: "Stump grind", Qty: dec("2"), UnitPrice: dec("50")},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !e.Total.Equal(dec("205")) {
		t.Fatalf("expected derived total 205, got %s", e.Total)
	}
	if e.Status != entities.EstimateStatusDraft {
		t.Fatalf("expected default draft, got %s", e.Status)
	}
	if len(e.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(e.LineItems))
	}
	if !e.LineItems[1].Total.Equal(dec("100")) {
		t.Fatalf("expected qty*unit_price total 100, got %s", e.LineItems[1].Total)
	}
}

func TestEstimateUseCase_CreateLeadMismatch(t *testing.T) {
	uow, node := newTestUoW(t)
	uc := NewEstimateUseCase(uow, node)
	customerA := seedCustomer(t, uow, node)
	customerB := seedCustomer(t, uow, node)
	lead := seedLead(t, uow, node, customerA.ID)

	_, err := uc.Create(context.Background(), CreateEstimateInput{
		CustomerID: customerB.ID,
		LeadID:     &lead.ID,
	})
	if !errors.Is(err, ErrEstimateLeadMismatch) {
		t.Fatalf("expected ErrEstimateLeadMismatch, got %v", err)
	}
}

func TestEstimateUseCase_SentAtSetOnce(t *testing.T) {
	uow, node := newTestUoW(t)
	uc := NewEstimateUseCase(uow, node)
	customer := seedCustomer(t, uow, node)
	ctx := context.Background()

	e, err := uc.Create(ctx, CreateEstimateInput{CustomerID: customer.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	sent := entities.EstimateStatusSent
	e, err = uc.Update(ctx, e.ID, EstimatePatch{Status: &sent})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if e.SentAt == nil {
		t.Fatalf("expected sent_at to be set")
	}
	first := *e.SentAt

	draft := entities.EstimateStatusDraft
	if _, err := uc.Update(ctx, e.ID, EstimatePatch{Status: &draft}); err != nil {
		t.Fatalf("update: %v", err)
	}
	e, err = uc.Update(ctx, e.ID, EstimatePatch{Status: &sent})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if e.SentAt == nil || !e.SentAt.Equal(first) {
		t.Fatalf("expected sent_at %v to survive the round trip, got %v", first, e.SentAt)
	}

	// An explicit timestamp wins over the set-once behavior.
	override := first.Add(-24 * time.Hour)
	e, err = uc.Update(ctx, e.ID, EstimatePatch{Status: &sent, SentAt: &override})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if e.SentAt == nil || !e.SentAt.Equal(override) {
		t.Fatalf("expected explicit sent_at %v, got %v", override, e.SentAt)
	}
}

func TestEstimateUseCase_ConvertToJobCreatesNewJobEachCall(t *testing.T) {
	uow, node := newTestUoW(t)
	uc := NewEstimateUseCase(uow, node)
	customer := seedCustomer(t, uow, node)
	ctx := context.Background()

	e, err := uc.Create(ctx, CreateEstimateInput{
		CustomerID: customer.ID,
		LineItems:  []LineItemInput{{Name: "Removal", UnitPrice: dec("205")}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	job1, err := uc.ConvertToJob(ctx, e.ID, ConvertEstimateToJobInput{Tasks: []string{"Fell", "Chip"}})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	job2, err := uc.ConvertToJob(ctx, e.ID, ConvertEstimateToJobInput{})
	if err != nil {
		t.Fatalf("convert again: %v", err)
	}

	if job1.ID == job2.ID {
		t.Fatalf("expected a new job per conversion, got the same id")
	}
	if !job1.Total.Equal(e.Total) || !job2.Total.Equal(e.Total) {
		t.Fatalf("expected job totals %s, got %s and %s", e.Total, job1.Total, job2.Total)
	}
	if len(job1.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(job1.Tasks))
	}

	e, err = uc.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e.Status != entities.EstimateStatusApproved || e.ApprovedAt == nil {
		t.Fatalf("expected approved estimate with approved_at, got %s %v", e.Status, e.ApprovedAt)
	}
}

func TestEstimateUseCase_ApproveAndInvoiceIsIdempotent(t *testing.T) {
	uow, node := newTestUoW(t)
	uc := NewEstimateUseCase(uow, node)
	customer := seedCustomer(t, uow, node)
	ctx := context.Background()

	e, err := uc.Create(ctx, CreateEstimateInput{
		CustomerID: customer.ID,
		Tax:        dec("10"),
		Discount:   dec("5"),
		LineItems: []LineItemInput{
			{Name: "Tree removal", UnitPrice: dec("100")},
			{Name: "Stump grind", Qty: dec("2"), UnitPrice: dec("50")},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	inv1, err := uc.ApproveAndInvoice(ctx, e.ID, nil)
	if err != nil {
		t.Fatalf("approve and invoice: %v", err)
	}
	inv2, err := uc.ApproveAndInvoice(ctx, e.ID, nil)
	if err != nil {
		t.Fatalf("approve and invoice again: %v", err)
	}

	if inv1.ID != inv2.ID {
		t.Fatalf("expected the same invoice, got %d and %d", inv1.ID, inv2.ID)
	}
	if !inv1.Total.Equal(dec("205")) || !inv1.Subtotal.Equal(dec("195")) || !inv1.Tax.Equal(dec("10")) {
		t.Fatalf("unexpected invoice amounts: subtotal %s tax %s total %s", inv1.Subtotal, inv1.Tax, inv1.Total)
	}
	if inv1.IssuedAt == nil {
		t.Fatalf("expected issued_at to default")
	}

	// A job was synthesized for the never-converted estimate.
	j, err := uow.Jobs().LatestByEstimateID(ctx, e.ID)
	if err != nil {
		t.Fatalf("latest job: %v", err)
	}
	if j.ID == 0 || j.ID != inv1.JobID {
		t.Fatalf("expected invoice bound to the synthesized job, got job %d invoice job %d", j.ID, inv1.JobID)
	}
	if j.Status != entities.JobStatusScheduled {
		t.Fatalf("expected scheduled synthesized job, got %s", j.Status)
	}

	e, err = uc.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e.Status != entities.EstimateStatusApproved {
		t.Fatalf("expected approved estimate, got %s", e.Status)
	}
}

func TestEstimateUseCase_ApproveAndInvoiceReusesConvertedJob(t *testing.T) {
	uow, node := newTestUoW(t)
	uc := NewEstimateUseCase(uow, node)
	customer := seedCustomer(t, uow, node)
	ctx := context.Background()

	e, err := uc.Create(ctx, CreateEstimateInput{CustomerID: customer.ID, Total: dec("300")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	job, err := uc.ConvertToJob(ctx, e.ID, ConvertEstimateToJobInput{})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	inv, err := uc.ApproveAndInvoice(ctx, e.ID, nil)
	if err != nil {
		t.Fatalf("approve and invoice: %v", err)
	}
	if inv.JobID != job.ID {
		t.Fatalf("expected invoice on converted job %d, got %d", job.ID, inv.JobID)
	}
}

func TestEstimateUseCase_NotFound(t *testing.T) {
	uow, node := newTestUoW(t)
	uc := NewEstimateUseCase(uow, node)

	if _, err := uc.GetByID(context.Background(), node.Generate()); !errors.Is(err, ErrEstimateNotFound) {
		t.Fatalf("expected ErrEstimateNotFound, got %v", err)
	}
	if _, err := uc.ApproveAndInvoice(context.Background(), node.Generate(), nil); !errors.Is(err, ErrEstimateNotFound) {
		t.Fatalf("expected ErrEstimateNotFound, got %v", err)
	}
}
