package response

import (
	"time"

	"github.com/bwmarrin/snowflake"

	"arborgold/internal/domain/entities"
)

type LeadResponse struct {
	ID         snowflake.ID `json:"id"`
	CustomerID snowflake.ID `json:"customer_id"`
	Source     *string      `json:"source"`
	Status     string       `json:"status"`
	Notes      string       `json:"notes"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:         l.ID,
		CustomerID: l.CustomerID,
		Source:     l.Source,
		Status:     string(l.Status),
		Notes:      l.Notes,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func FromLeads(leads []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, FromLead(l))
	}
	return out
}
