package usecase

import (
	"context"
	"errors"
	"testing"

	"arborgold/internal/domain/entities"
)

func TestInvoiceUseCase_RecordPaymentLifecycle(t *testing.T) {
	uow, node := newTestUoW(t)
	jobs := NewJobUseCase(uow, node)
	invoices := NewInvoiceUseCase(uow, node)
	customer := seedCustomer(t, uow, node)
	ctx := context.Background()

	j, err := jobs.Create(ctx, CreateJobInput{CustomerID: customer.ID, Total: dec("205")})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	inv, err := jobs.Complete(ctx, j.ID, dec("20"))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !inv.Total.Equal(dec("225")) {
		t.Fatalf("expected total 225, got %s", inv.Total)
	}

	_, inv, err = invoices.RecordPayment(ctx, inv.ID, RecordPaymentInput{Amount: dec("100"), Method: "card"})
	if err != nil {
		t.Fatalf("record payment: %v", err)
	}
	if inv.Status != entities.InvoiceStatusPartial {
		t.Fatalf("expected partial, got %s", inv.Status)
	}

	p, inv, err := invoices.RecordPayment(ctx, inv.ID, RecordPaymentInput{Amount: dec("125")})
	if err != nil {
		t.Fatalf("record payment: %v", err)
	}
	if inv.Status != entities.InvoiceStatusPaid {
		t.Fatalf("expected paid, got %s", inv.Status)
	}
	if p.Method != "other" {
		t.Fatalf("expected default method other, got %s", p.Method)
	}
	if p.PaidAt.IsZero() {
		t.Fatalf("expected paid_at to default")
	}

	// Overshooting never regresses the status past paid.
	_, inv, err = invoices.RecordPayment(ctx, inv.ID, RecordPaymentInput{Amount: dec("50")})
	if err != nil {
		t.Fatalf("record payment: %v", err)
	}
	if inv.Status != entities.InvoiceStatusPaid {
		t.Fatalf("expected paid after overshoot, got %s", inv.Status)
	}
	if len(inv.Payments) != 3 {
		t.Fatalf("expected 3 payments on the reloaded invoice, got %d", len(inv.Payments))
	}
}

func TestInvoiceUseCase_RecordPaymentValidation(t *testing.T) {
	uow, node := newTestUoW(t)
	jobs := NewJobUseCase(uow, node)
	invoices := NewInvoiceUseCase(uow, node)
	customer := seedCustomer(t, uow, node)
	ctx := context.Background()

	j, err := jobs.Create(ctx, CreateJobInput{CustomerID: customer.ID, Total: dec("100")})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	inv, err := jobs.Complete(ctx, j.ID, dec("0"))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	if _, _, err := invoices.RecordPayment(ctx, inv.ID, RecordPaymentInput{Amount: dec("0")}); !errors.Is(err, ErrInvalidPaymentAmount) {
		t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
	}
	if _, _, err := invoices.RecordPayment(ctx, inv.ID, RecordPaymentInput{Amount: dec("-5")}); !errors.Is(err, ErrInvalidPaymentAmount) {
		t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
	}
	if _, _, err := invoices.RecordPayment(ctx, inv.ID, RecordPaymentInput{InvoiceID: node.Generate(), Amount: dec("10")}); !errors.Is(err, ErrPaymentInvoiceMismatch) {
		t.Fatalf("expected ErrPaymentInvoiceMismatch, got %v", err)
	}
	if _, _, err := invoices.RecordPayment(ctx, node.Generate(), RecordPaymentInput{Amount: dec("10")}); !errors.Is(err, ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}

func TestInvoiceUseCase_CreateRejectsSecondInvoiceForJob(t *testing.T) {
	uow, node := newTestUoW(t)
	jobs := NewJobUseCase(uow, node)
	invoices := NewInvoiceUseCase(uow, node)
	customer := seedCustomer(t, uow, node)
	ctx := context.Background()

	j, err := jobs.Create(ctx, CreateJobInput{CustomerID: customer.ID})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	if _, err := invoices.Create(ctx, CreateInvoiceInput{CustomerID: customer.ID, JobID: j.ID, Subtotal: dec("100")}); err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	_, err = invoices.Create(ctx, CreateInvoiceInput{CustomerID: customer.ID, JobID: j.ID, Subtotal: dec("100")})
	if !errors.Is(err, ErrJobAlreadyInvoiced) {
		t.Fatalf("expected ErrJobAlreadyInvoiced, got %v", err)
	}
}

func TestInvoiceUseCase_CreateCustomerMismatch(t *testing.T) {
	uow, node := newTestUoW(t)
	jobs := NewJobUseCase(uow, node)
	invoices := NewInvoiceUseCase(uow, node)
	customerA := seedCustomer(t, uow, node)
	customerB := seedCustomer(t, uow, node)
	ctx := context.Background()

	j, err := jobs.Create(ctx, CreateJobInput{CustomerID: customerA.ID})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	_, err = invoices.Create(ctx, CreateInvoiceInput{CustomerID: customerB.ID, JobID: j.ID})
	if !errors.Is(err, ErrInvoiceCustomerMismatch) {
		t.Fatalf("expected ErrInvoiceCustomerMismatch, got %v", err)
	}
}

func TestInvoiceUseCase_UpdateRederivesTotal(t *testing.T) {
	uow, node := newTestUoW(t)
	jobs := NewJobUseCase(uow, node)
	invoices := NewInvoiceUseCase(uow, node)
	customer := seedCustomer(t, uow, node)
	ctx := context.Background()

	j, err := jobs.Create(ctx, CreateJobInput{CustomerID: customer.ID})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	inv, err := invoices.Create(ctx, CreateInvoiceInput{CustomerID: customer.ID, JobID: j.ID, Subtotal: dec("100"), Tax: dec("10")})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if !inv.Total.Equal(dec("110")) {
		t.Fatalf("expected total 110, got %s", inv.Total)
	}

	newTax := dec("30")
	inv, err = invoices.Update(ctx, inv.ID, InvoicePatch{Tax: &newTax})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !inv.Total.Equal(dec("130")) {
		t.Fatalf("expected rederived total 130, got %s", inv.Total)
	}

	// A pinned total wins over rederivation.
	pinned := dec("95")
	inv, err = invoices.Update(ctx, inv.ID, InvoicePatch{Tax: &newTax, Total: &pinned})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !inv.Total.Equal(dec("95")) {
		t.Fatalf("expected pinned total 95, got %s", inv.Total)
	}
}

// Full lead-to-paid walk: estimate with line items, conversion to a job,
// completion into an invoice, then payment to settled.
func TestLifecycle_EstimateToPaidInvoice(t *testing.T) {
	uow, node := newTestUoW(t)
	estimates := NewEstimateUseCase(uow, node)
	jobs := NewJobUseCase(uow, node)
	invoices := NewInvoiceUseCase(uow, node)
	customer := seedCustomer(t, uow, node)
	lead := seedLead(t, uow, node, customer.ID)
	ctx := context.Background()

	e, err := estimates.Create(ctx, CreateEstimateInput{
		CustomerID: customer.ID,
		LeadID:     &lead.ID,
		Tax:        dec("10"),
		Discount:   dec("5"),
		LineItems: []LineItemInput{
			{Name: "Tree removal", Qty: dec("1"), UnitPrice: dec("100")},
			{Name: "Limb chipping", Qty: dec("2"), UnitPrice: dec("50")},
		},
	})
	if err != nil {
		t.Fatalf("create estimate: %v", err)
	}
	if !e.Total.Equal(dec("205")) {
		t.Fatalf("expected estimate total 205, got %s", e.Total)
	}

	j, err := estimates.ConvertToJob(ctx, e.ID, ConvertEstimateToJobInput{})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !j.Total.Equal(dec("205")) {
		t.Fatalf("expected job total 205, got %s", j.Total)
	}

	inv, err := jobs.Complete(ctx, j.ID, dec("20"))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !inv.Total.Equal(dec("225")) {
		t.Fatalf("expected invoice total 225, got %s", inv.Total)
	}

	_, inv, err = invoices.RecordPayment(ctx, inv.ID, RecordPaymentInput{Amount: dec("225"), Method: "check"})
	if err != nil {
		t.Fatalf("record payment: %v", err)
	}
	if inv.Status != entities.InvoiceStatusPaid {
		t.Fatalf("expected paid, got %s", inv.Status)
	}
}
