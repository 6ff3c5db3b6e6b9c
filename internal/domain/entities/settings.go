package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsID is the fixed primary key of the singleton settings row.
const SettingsID int64 = 1

// Settings is company-wide configuration. It is an idempotent get-or-create
// behind a well-known id, not process-global state.
type Settings struct {
	ID             int64           `gorm:"primaryKey" json:"id"`
	CompanyName    string          `gorm:"size:200;not null;default:'ArborGold Pro'" json:"company_name"`
	CompanyLogoURL string          `gorm:"type:text" json:"company_logo_url"`
	DefaultTaxRate decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"default_tax_rate"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (Settings) TableName() string { return "settings" }
