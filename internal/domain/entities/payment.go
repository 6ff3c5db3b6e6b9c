package entities

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Payment is a partial or full settlement against an invoice. Amount must be
// positive; paid_at defaults to the time of recording.
type Payment struct {
	ID        snowflake.ID    `gorm:"primaryKey" json:"id"`
	InvoiceID snowflake.ID    `gorm:"not null;index" json:"invoice_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"amount"`
	Method    string          `gorm:"size:50;not null;default:other" json:"method"`
	PaidAt    time.Time       `gorm:"not null;index" json:"paid_at"`
	Note      *string         `gorm:"type:text" json:"note"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }
