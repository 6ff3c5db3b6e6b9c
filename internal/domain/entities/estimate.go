package entities

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// EstimateStatus represents the lifecycle of a priced proposal.
//
// Domain notes:
//   - sent_at / approved_at are set the first time the matching status is
//     entered and are never cleared implicitly afterwards.
//   - Conversions (estimate→job, estimate→invoice) force the estimate into
//     approved regardless of its prior status.

type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusRejected EstimateStatus = "rejected"
)

func ValidEstimateStatus(s EstimateStatus) bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusSent, EstimateStatusApproved, EstimateStatusRejected:
		return true
	}
	return false
}

// Estimate is a priced proposal for a customer, optionally traced back to a
// lead (the lead must belong to the same customer).
//
// Monetary representation:
//   - Total is derived from the line items whenever line items are present:
//     max(sum(item totals) + tax - discount, 0). Estimates without line items
//     keep the caller-supplied total (quick price entry).
type Estimate struct {
	ID             snowflake.ID    `gorm:"primaryKey" json:"id"`
	CustomerID     snowflake.ID    `gorm:"not null;index" json:"customer_id"`
	LeadID         *snowflake.ID   `gorm:"index" json:"lead_id"`
	Status         EstimateStatus  `gorm:"size:50;not null;default:draft" json:"status"`
	Scope          string          `gorm:"type:text" json:"scope"`
	Hazards        string          `gorm:"type:text" json:"hazards"`
	Equipment      string          `gorm:"type:text" json:"equipment"`
	SuggestedPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"suggested_price"`
	Total          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"total"`
	Tax            decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"tax"`
	Discount       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"discount"`
	SentAt         *time.Time      `json:"sent_at"`
	ApprovedAt     *time.Time      `json:"approved_at"`
	Notes          string          `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	LineItems []EstimateLineItem `gorm:"foreignKey:EstimateID" json:"line_items"`
}

func (Estimate) TableName() string { return "estimates" }

// EstimateLineItem is one priced component of an estimate. Total defaults to
// qty*unit_price but an explicit caller-supplied total wins.
type EstimateLineItem struct {
	ID          snowflake.ID    `gorm:"primaryKey" json:"id"`
	EstimateID  snowflake.ID    `gorm:"not null;index" json:"estimate_id"`
	Name        string          `gorm:"size:200;not null" json:"name"`
	Description *string         `gorm:"type:text" json:"description"`
	Qty         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:1" json:"qty"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"unit_price"`
	Total       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"total"`
	SortOrder   int             `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (EstimateLineItem) TableName() string { return "estimate_line_items" }
