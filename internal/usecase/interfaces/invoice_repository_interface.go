package interfaces

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"arborgold/internal/domain/entities"
)

type InvoiceFilter struct {
	Q          string
	Status     entities.InvoiceStatus
	CustomerID snowflake.ID
	JobID      snowflake.ID
}

// InvoiceRepository abstracts persistence for Invoice and its owned
// payments.
//
// Create must surface the unique job_id constraint as a duplicate-key error
// so concurrent ensure-or-return callers can re-fetch instead of producing a
// second invoice for one job. Listings order by issued_at descending with
// null issued_at last, newest id first as tie-break, on every engine.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *entities.Invoice) error
	GetByID(ctx context.Context, id snowflake.ID) (entities.Invoice, error)
	GetByJobID(ctx context.Context, jobID snowflake.ID) (entities.Invoice, error)
	Update(ctx context.Context, inv *entities.Invoice) error
	List(ctx context.Context, f InvoiceFilter) ([]entities.Invoice, error)
	Delete(ctx context.Context, id snowflake.ID) error
	DeleteByCustomerID(ctx context.Context, customerID snowflake.ID) error
	DeleteByJobID(ctx context.Context, jobID snowflake.ID) error

	AddPayment(ctx context.Context, p *entities.Payment) error
	SumPayments(ctx context.Context, invoiceID snowflake.ID) (decimal.Decimal, error)
}
