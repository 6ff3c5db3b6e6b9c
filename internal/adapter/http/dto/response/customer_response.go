package response

import (
	"time"

	"github.com/bwmarrin/snowflake"

	"arborgold/internal/domain/entities"
)

type CustomerResponse struct {
	ID             snowflake.ID `json:"id"`
	Name           string       `json:"name"`
	CompanyName    *string      `json:"company_name"`
	Phone          string       `json:"phone"`
	Email          string       `json:"email"`
	BillingAddress string       `json:"billing_address"`
	ServiceAddress string       `json:"service_address"`
	Notes          string       `json:"notes"`
	Tags           []string     `json:"tags"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	tags := []string(c.Tags)
	if tags == nil {
		tags = []string{}
	}
	return CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		CompanyName:    c.CompanyName,
		Phone:          c.Phone,
		Email:          c.Email,
		BillingAddress: c.BillingAddress,
		ServiceAddress: c.ServiceAddress,
		Notes:          c.Notes,
		Tags:           tags,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func FromCustomers(customers []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c))
	}
	return out
}
