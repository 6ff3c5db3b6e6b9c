package entities

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// InvoiceStatus is driven by payment recording: cumulative payments ≥ total
// → paid, > 0 → partial. It is not regressed once paid except by an
// administrative override through a direct update.

type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "unpaid"
	InvoiceStatusPartial InvoiceStatus = "partial"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceStatusUnpaid, InvoiceStatusPartial, InvoiceStatusPaid:
		return true
	}
	return false
}

// Invoice bills exactly one job (unique job_id — the 1:1 invariant the
// ensure-or-return conversions rely on) and must reference the job's
// customer.
//
// Monetary representation:
//   - Total = max(subtotal + tax, 0), recomputed whenever subtotal or tax
//     change without an explicit total.
type Invoice struct {
	ID         snowflake.ID    `gorm:"primaryKey" json:"id"`
	CustomerID snowflake.ID    `gorm:"not null;index" json:"customer_id"`
	JobID      snowflake.ID    `gorm:"not null;uniqueIndex:uq_invoice_job" json:"job_id"`
	Status     InvoiceStatus   `gorm:"size:50;not null;default:unpaid" json:"status"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"subtotal"`
	Tax        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"tax"`
	Total      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"total"`
	IssuedAt   *time.Time      `json:"issued_at"`
	DueDate    *time.Time      `json:"due_date"`
	Notes      string          `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	Payments []Payment `gorm:"foreignKey:InvoiceID" json:"payments"`
}

func (Invoice) TableName() string { return "invoices" }
