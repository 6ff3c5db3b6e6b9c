package request

import (
	"github.com/shopspring/decimal"

	"arborgold/internal/usecase"
)

type UpdateSettingsRequest struct {
	CompanyName    *string          `json:"company_name"`
	CompanyLogoURL *string          `json:"company_logo_url"`
	DefaultTaxRate *decimal.Decimal `json:"default_tax_rate"`
}

func (r UpdateSettingsRequest) ToPatch() usecase.SettingsPatch {
	return usecase.SettingsPatch{
		CompanyName:    r.CompanyName,
		CompanyLogoURL: r.CompanyLogoURL,
		DefaultTaxRate: r.DefaultTaxRate,
	}
}
