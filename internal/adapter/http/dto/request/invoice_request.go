package request

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase"
)

type CreateInvoiceRequest struct {
	CustomerID snowflake.ID    `json:"customer_id" binding:"required"`
	JobID      snowflake.ID    `json:"job_id" binding:"required"`
	Status     string          `json:"status"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	IssuedAt   *time.Time      `json:"issued_at"`
	DueDate    *time.Time      `json:"due_date"`
	Notes      string          `json:"notes"`
}

func (r CreateInvoiceRequest) ToInput() usecase.CreateInvoiceInput {
	return usecase.CreateInvoiceInput{
		CustomerID: r.CustomerID,
		JobID:      r.JobID,
		Status:     entities.InvoiceStatus(r.Status),
		Subtotal:   r.Subtotal,
		Tax:        r.Tax,
		IssuedAt:   r.IssuedAt,
		DueDate:    r.DueDate,
		Notes:      r.Notes,
	}
}

type UpdateInvoiceRequest struct {
	Status   *string          `json:"status"`
	Subtotal *decimal.Decimal `json:"subtotal"`
	Tax      *decimal.Decimal `json:"tax"`
	Total    *decimal.Decimal `json:"total"`
	IssuedAt *time.Time       `json:"issued_at"`
	DueDate  *time.Time       `json:"due_date"`
	Notes    *string          `json:"notes"`
}

func (r UpdateInvoiceRequest) ToPatch() usecase.InvoicePatch {
	patch := usecase.InvoicePatch{
		Subtotal: r.Subtotal,
		Tax:      r.Tax,
		Total:    r.Total,
		IssuedAt: r.IssuedAt,
		DueDate:  r.DueDate,
		Notes:    r.Notes,
	}
	if r.Status != nil {
		s := entities.InvoiceStatus(*r.Status)
		patch.Status = &s
	}
	return patch
}

// RecordPaymentRequest applies a payment against the invoice in the path.
// InvoiceID, when present, must match that invoice.
type RecordPaymentRequest struct {
	InvoiceID snowflake.ID    `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Method    string          `json:"method"`
	PaidAt    *time.Time      `json:"paid_at"`
	Note      *string         `json:"note"`
}

func (r RecordPaymentRequest) ToInput() usecase.RecordPaymentInput {
	return usecase.RecordPaymentInput{
		InvoiceID: r.InvoiceID,
		Amount:    r.Amount,
		Method:    r.Method,
		PaidAt:    r.PaidAt,
		Note:      r.Note,
	}
}
