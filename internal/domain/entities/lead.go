package entities

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// LeadStatus tracks a prospect from first contact until it converts into
// estimate work or is lost. Any status may be set programmatically; there
// are no machine-enforced edges.

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusLost      LeadStatus = "lost"
)

func ValidLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusLost:
		return true
	}
	return false
}

// Lead is a prospective customer inquiry, pre-estimate.
type Lead struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	CustomerID snowflake.ID `gorm:"not null;index" json:"customer_id"`
	Source     *string      `gorm:"size:100" json:"source"`
	Status     LeadStatus   `gorm:"size:50;not null;default:new" json:"status"`
	Notes      string       `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (Lead) TableName() string { return "leads" }
