package request

import (
	"arborgold/internal/usecase"
)

type CreateCustomerRequest struct {
	Name           string   `json:"name" binding:"required"`
	CompanyName    *string  `json:"company_name"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"`
	BillingAddress string   `json:"billing_address"`
	ServiceAddress string   `json:"service_address"`
	Notes          string   `json:"notes"`
	Tags           []string `json:"tags"`
}

func (r CreateCustomerRequest) ToInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		Name:           r.Name,
		CompanyName:    r.CompanyName,
		Phone:          r.Phone,
		Email:          r.Email,
		BillingAddress: r.BillingAddress,
		ServiceAddress: r.ServiceAddress,
		Notes:          r.Notes,
		Tags:           r.Tags,
	}
}

// UpdateCustomerRequest is a partial update; absent fields are left as-is.
type UpdateCustomerRequest struct {
	Name           *string   `json:"name"`
	CompanyName    *string   `json:"company_name"`
	Phone          *string   `json:"phone"`
	Email          *string   `json:"email"`
	BillingAddress *string   `json:"billing_address"`
	ServiceAddress *string   `json:"service_address"`
	Notes          *string   `json:"notes"`
	Tags           *[]string `json:"tags"`
}

func (r UpdateCustomerRequest) ToPatch() usecase.CustomerPatch {
	return usecase.CustomerPatch{
		Name:           r.Name,
		CompanyName:    r.CompanyName,
		Phone:          r.Phone,
		Email:          r.Email,
		BillingAddress: r.BillingAddress,
		ServiceAddress: r.ServiceAddress,
		Notes:          r.Notes,
		Tags:           r.Tags,
	}
}
