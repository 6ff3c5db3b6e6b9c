package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"arborgold/internal/domain/billing"
	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

var (
	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrInvalidInvoiceStatus    = errors.New("invalid invoice status")
	ErrInvoiceCustomerMismatch = errors.New("invoice customer does not match the job customer")
	ErrPaymentInvoiceMismatch  = errors.New("payment references a different invoice")
	ErrInvalidPaymentAmount    = errors.New("payment amount must be positive")
	ErrJobAlreadyInvoiced      = errors.New("job already has an invoice")
)

type CreateInvoiceInput struct {
	CustomerID snowflake.ID
	JobID      snowflake.ID
	Status     entities.InvoiceStatus
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	IssuedAt   *time.Time
	DueDate    *time.Time
	Notes      string
}

type InvoicePatch struct {
	Status   *entities.InvoiceStatus
	Subtotal *decimal.Decimal
	Tax      *decimal.Decimal
	Total    *decimal.Decimal
	IssuedAt *time.Time
	DueDate  *time.Time
	Notes    *string
}

type RecordPaymentInput struct {
	InvoiceID snowflake.ID
	Amount    decimal.Decimal
	Method    string
	PaidAt    *time.Time
	Note      *string
}

type IInvoiceUseCase interface {
	Create(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, error)
	GetByID(ctx context.Context, id snowflake.ID) (entities.Invoice, error)
	Update(ctx context.Context, id snowflake.ID, patch InvoicePatch) (entities.Invoice, error)
	List(ctx context.Context, f interfaces.InvoiceFilter) ([]entities.Invoice, error)
	Delete(ctx context.Context, id snowflake.ID) error
	RecordPayment(ctx context.Context, id snowflake.ID, in RecordPaymentInput) (entities.Payment, entities.Invoice, error)
}

type InvoiceUseCase struct {
	uow  interfaces.UnitOfWork
	node *snowflake.Node
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(uow interfaces.UnitOfWork, node *snowflake.Node) *InvoiceUseCase {
	return &InvoiceUseCase{uow: uow, node: node}
}

func (u *InvoiceUseCase) Create(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, error) {
	customer, err := u.uow.Customers().GetByID(ctx, in.CustomerID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if customer.ID == 0 {
		return entities.Invoice{}, ErrCustomerNotFound
	}

	j, err := u.uow.Jobs().GetByID(ctx, in.JobID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if j.ID == 0 {
		return entities.Invoice{}, ErrJobNotFound
	}
	if j.CustomerID != in.CustomerID {
		return entities.Invoice{}, ErrInvoiceCustomerMismatch
	}

	status := in.Status
	if status == "" {
		status = entities.InvoiceStatusUnpaid
	}
	if !entities.ValidInvoiceStatus(status) {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}

	issued := in.IssuedAt
	if issued == nil {
		now := time.Now().UTC()
		issued = &now
	}

	inv := entities.Invoice{
		ID:         u.node.Generate(),
		CustomerID: in.CustomerID,
		JobID:      in.JobID,
		Status:     status,
		Subtotal:   in.Subtotal,
		Tax:        in.Tax,
		Total:      billing.InvoiceTotal(in.Subtotal, in.Tax),
		IssuedAt:   issued,
		DueDate:    in.DueDate,
		Notes:      in.Notes,
	}
	if err := u.uow.Invoices().Create(ctx, &inv); err != nil {
		// Direct creation against an invoiced job is a user-visible
		// duplicate, unlike the ensure-or-return conversions.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.Invoice{}, ErrJobAlreadyInvoiced
		}
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id snowflake.ID) (entities.Invoice, error) {
	inv, err := u.uow.Invoices().GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == 0 {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) Update(ctx context.Context, id snowflake.ID, patch InvoicePatch) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	if patch.Status != nil && !entities.ValidInvoiceStatus(*patch.Status) {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}

	if patch.Status != nil {
		inv.Status = *patch.Status
	}
	if patch.Subtotal != nil {
		inv.Subtotal = *patch.Subtotal
	}
	if patch.Tax != nil {
		inv.Tax = *patch.Tax
	}
	if patch.IssuedAt != nil {
		inv.IssuedAt = patch.IssuedAt
	}
	if patch.DueDate != nil {
		inv.DueDate = patch.DueDate
	}
	if patch.Notes != nil {
		inv.Notes = *patch.Notes
	}
	// Changing the amounts rederives the total unless the caller pinned one.
	if patch.Total != nil {
		inv.Total = *patch.Total
	} else if patch.Subtotal != nil || patch.Tax != nil {
		inv.Total = billing.InvoiceTotal(inv.Subtotal, inv.Tax)
	}

	if err := u.uow.Invoices().Update(ctx, &inv); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context, f interfaces.InvoiceFilter) ([]entities.Invoice, error) {
	return u.uow.Invoices().List(ctx, f)
}

func (u *InvoiceUseCase) Delete(ctx context.Context, id snowflake.ID) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.uow.Invoices().Delete(ctx, id)
}

// RecordPayment appends a payment and rederives the invoice status from the
// full payment history, not an incremental delta, so out-of-band edits to
// earlier payments cannot leave the status stale.
func (u *InvoiceUseCase) RecordPayment(ctx context.Context, id snowflake.ID, in RecordPaymentInput) (entities.Payment, entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, err
	}
	if in.InvoiceID != 0 && in.InvoiceID != inv.ID {
		return entities.Payment{}, entities.Invoice{}, ErrPaymentInvoiceMismatch
	}
	if !in.Amount.IsPositive() {
		return entities.Payment{}, entities.Invoice{}, ErrInvalidPaymentAmount
	}

	paidAt := in.PaidAt
	if paidAt == nil {
		now := time.Now().UTC()
		paidAt = &now
	}
	method := in.Method
	if method == "" {
		method = "other"
	}
	p := entities.Payment{
		ID:        u.node.Generate(),
		InvoiceID: inv.ID,
		Amount:    in.Amount,
		Method:    method,
		PaidAt:    *paidAt,
		Note:      in.Note,
	}

	err = u.uow.Do(ctx, func(tx interfaces.Repositories) error {
		if err := tx.Invoices().AddPayment(ctx, &p); err != nil {
			return err
		}
		totalPaid, err := tx.Invoices().SumPayments(ctx, inv.ID)
		if err != nil {
			return err
		}
		inv.Status = billing.PaymentStatus(inv.Status, totalPaid, inv.Total)
		return tx.Invoices().Update(ctx, &inv)
	})
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, err
	}

	inv, err = u.GetByID(ctx, inv.ID)
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, err
	}
	return p, inv, nil
}
