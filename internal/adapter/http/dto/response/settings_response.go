package response

import (
	"time"

	"github.com/shopspring/decimal"

	"arborgold/internal/domain/entities"
)

type SettingsResponse struct {
	CompanyName    string          `json:"company_name"`
	CompanyLogoURL string          `json:"company_logo_url"`
	DefaultTaxRate decimal.Decimal `json:"default_tax_rate"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func FromSettings(s entities.Settings) SettingsResponse {
	return SettingsResponse{
		CompanyName:    s.CompanyName,
		CompanyLogoURL: s.CompanyLogoURL,
		DefaultTaxRate: s.DefaultTaxRate,
		UpdatedAt:      s.UpdatedAt,
	}
}
