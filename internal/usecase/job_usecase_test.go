package usecase

import (
	"context"
	"errors"
	"testing"

	"arborgold/internal/domain/entities"
)

func TestJobUseCase_CompleteEnsuresSingleInvoice(t *testing.T) {
	uow, node := newTestUoW(t)
	uc := NewJobUseCase(uow, node)
	customer := seedCustomer(t, uow, node)
	ctx := context.Background()

	j, err := uc.Create(ctx, CreateJobInput{CustomerID: customer.ID, Total: dec("200")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	inv1, err := uc.Complete(ctx, j.ID, dec("20"))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !inv1.Total.Equal(dec("220")) || !inv1.Subtotal.Equal(dec("200")) {
		t.Fatalf("unexpected invoice amounts: subtotal %s total %s", inv1.Subtotal, inv1.Total)
	}
	if inv1.Status != entities.InvoiceStatusUnpaid {
		t.Fatalf("expected unpaid, got %s", inv1.Status)
	}

	// The second call must not create or reprice anything.
	inv2, err := uc.Complete(ctx, j.ID, dec("999"))
	if err != nil {
		t.Fatalf("complete again: %v", err)
	}
	if inv2.ID != inv1.ID || !inv2.Total.Equal(dec("220")) {
		t.Fatalf("expected the original invoice untouched, got id %d total %s", inv2.ID, inv2.Total)
	}

	j, err = uc.GetByID(ctx, j.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if j.Status != entities.JobStatusCompleted || j.CompletedAt == nil {
		t.Fatalf("expected completed job with completed_at, got %s %v", j.Status, j.CompletedAt)
	}
}

func TestJobUseCase_CompletedAtSetOnce(t *testing.T) {
	uow, node := newTestUoW(t)
	uc := NewJobUseCase(uow, node)
	customer := seedCustomer(t, uow, node)
	ctx := context.Background()

	j, err := uc.Create(ctx, CreateJobInput{CustomerID: customer.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	completed := entities.JobStatusCompleted
	j, err = uc.Update(ctx, j.ID, JobPatch{Status: &completed})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if j.CompletedAt == nil {
		t.Fatalf("expected completed_at to be set")
	}
	first := *j.CompletedAt

	scheduled := entities.JobStatusScheduled
	if _, err := uc.Update(ctx, j.ID, JobPatch{Status: &scheduled}); err != nil {
		t.Fatalf("update: %v", err)
	}
	j, err = uc.Update(ctx, j.ID, JobPatch{Status: &completed})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if j.CompletedAt == nil || !j.CompletedAt.Equal(first) {
		t.Fatalf("expected completed_at %v to survive, got %v", first, j.CompletedAt)
	}
}

func TestJobUseCase_EstimateMustBelongToCustomer(t *testing.T) {
	uow, node := newTestUoW(t)
	jobs := NewJobUseCase(uow, node)
	estimates := NewEstimateUseCase(uow, node)
	customerA := seedCustomer(t, uow, node)
	customerB := seedCustomer(t, uow, node)
	ctx := context.Background()

	e, err := estimates.Create(ctx, CreateEstimateInput{CustomerID: customerA.ID})
	if err != nil {
		t.Fatalf("create estimate: %v", err)
	}

	_, err = jobs.Create(ctx, CreateJobInput{CustomerID: customerB.ID, EstimateID: &e.ID})
	if !errors.Is(err, ErrJobEstimateMismatch) {
		t.Fatalf("expected ErrJobEstimateMismatch, got %v", err)
	}
}

func TestJobUseCase_TaskOwnership(t *testing.T) {
	uow, node := newTestUoW(t)
	uc := NewJobUseCase(uow, node)
	customer := seedCustomer(t, uow, node)
	ctx := context.Background()

	job1, err := uc.Create(ctx, CreateJobInput{CustomerID: customer.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	job2, err := uc.Create(ctx, CreateJobInput{CustomerID: customer.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	task, err := uc.AddTask(ctx, job1.ID, CreateTaskInput{Title: "Set cones"})
	if err != nil {
		t.Fatalf("add task: %v", err)
	}

	done := true
	if _, err := uc.UpdateTask(ctx, job2.ID, task.ID, TaskPatch{Completed: &done}); !errors.Is(err, ErrTaskJobMismatch) {
		t.Fatalf("expected ErrTaskJobMismatch, got %v", err)
	}

	updated, err := uc.UpdateTask(ctx, job1.ID, task.ID, TaskPatch{Completed: &done})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}
	if !updated.Completed {
		t.Fatalf("expected completed task")
	}

	if err := uc.DeleteTask(ctx, job1.ID, task.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if err := uc.DeleteTask(ctx, job1.ID, task.ID); !errors.Is(err, ErrJobTaskNotFound) {
		t.Fatalf("expected ErrJobTaskNotFound, got %v", err)
	}
}

func TestJobUseCase_AssignEquipmentIdempotent(t *testing.T) {
	uow, node := newTestUoW(t)
	uc := NewJobUseCase(uow, node)
	customer := seedCustomer(t, uow, node)
	ctx := context.Background()

	eq := entities.Equipment{ID: node.Generate(), Name: "Chipper", Status: entities.EquipmentStatusAvailable}
	if err := uow.Equipment().Create(ctx, &eq); err != nil {
		t.Fatalf("seed equipment: %v", err)
	}
	j, err := uc.Create(ctx, CreateJobInput{CustomerID: customer.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := uc.AssignEquipment(ctx, j.ID, eq.ID); err != nil {
		t.Fatalf("assign: %v", err)
	}
	j, err = uc.AssignEquipment(ctx, j.ID, eq.ID)
	if err != nil {
		t.Fatalf("assign again: %v", err)
	}
	if got := len(j.EquipmentIDs()); got != 1 {
		t.Fatalf("expected one equipment link, got %d", got)
	}

	if _, err := uc.RemoveEquipment(ctx, j.ID, eq.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := uc.RemoveEquipment(ctx, j.ID, eq.ID); !errors.Is(err, ErrEquipmentLinkNotFound) {
		t.Fatalf("expected ErrEquipmentLinkNotFound, got %v", err)
	}
}

func TestJobUseCase_DeleteRemovesInvoice(t *testing.T) {
	uow, node := newTestUoW(t)
	jobs := NewJobUseCase(uow, node)
	invoices := NewInvoiceUseCase(uow, node)
	customer := seedCustomer(t, uow, node)
	ctx := context.Background()

	j, err := jobs.Create(ctx, CreateJobInput{CustomerID: customer.ID, Total: dec("100")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	inv, err := jobs.Complete(ctx, j.ID, dec("0"))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	if err := jobs.Delete(ctx, j.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := invoices.GetByID(ctx, inv.ID); !errors.Is(err, ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}
