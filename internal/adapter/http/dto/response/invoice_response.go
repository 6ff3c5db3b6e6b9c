package response

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"arborgold/internal/domain/entities"
)

type PaymentResponse struct {
	ID        snowflake.ID    `json:"id"`
	InvoiceID snowflake.ID    `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	PaidAt    time.Time       `json:"paid_at"`
	Note      *string         `json:"note"`
}

type InvoiceResponse struct {
	ID         snowflake.ID      `json:"id"`
	CustomerID snowflake.ID      `json:"customer_id"`
	JobID      snowflake.ID      `json:"job_id"`
	Status     string            `json:"status"`
	Subtotal   decimal.Decimal   `json:"subtotal"`
	Tax        decimal.Decimal   `json:"tax"`
	Total      decimal.Decimal   `json:"total"`
	IssuedAt   *time.Time        `json:"issued_at"`
	DueDate    *time.Time        `json:"due_date"`
	Notes      string            `json:"notes"`
	Payments   []PaymentResponse `json:"payments"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		InvoiceID: p.InvoiceID,
		Amount:    p.Amount,
		Method:    p.Method,
		PaidAt:    p.PaidAt,
		Note:      p.Note,
	}
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	payments := make([]PaymentResponse, 0, len(inv.Payments))
	for _, p := range inv.Payments {
		payments = append(payments, FromPayment(p))
	}
	return InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		JobID:      inv.JobID,
		Status:     string(inv.Status),
		Subtotal:   inv.Subtotal,
		Tax:        inv.Tax,
		Total:      inv.Total,
		IssuedAt:   inv.IssuedAt,
		DueDate:    inv.DueDate,
		Notes:      inv.Notes,
		Payments:   payments,
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}
