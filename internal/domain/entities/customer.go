package entities

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Customer is the root of the ownership graph: leads, estimates, jobs and
// invoices all hang off a customer and are removed with it.
//
// Storage model:
//   - PK: id (snowflake)
//   - tags persisted as a JSON array column
type Customer struct {
	ID             snowflake.ID               `gorm:"primaryKey" json:"id"`
	Name           string                     `gorm:"size:200;not null" json:"name"`
	CompanyName    *string                    `gorm:"size:200" json:"company_name"`
	Phone          string                     `gorm:"size:50;default:''" json:"phone"`
	Email          string                     `gorm:"size:255;default:''" json:"email"`
	BillingAddress string                     `gorm:"type:text" json:"billing_address"`
	ServiceAddress string                     `gorm:"type:text" json:"service_address"`
	Notes          string                     `gorm:"type:text" json:"notes"`
	Tags           datatypes.JSONSlice[string] `gorm:"type:json" json:"tags"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }
