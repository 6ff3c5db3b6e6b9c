package request

import (
	"github.com/bwmarrin/snowflake"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase"
)

type CreateLeadRequest struct {
	CustomerID snowflake.ID `json:"customer_id" binding:"required"`
	Source     *string      `json:"source"`
	Status     string       `json:"status"`
	Notes      string       `json:"notes"`
}

func (r CreateLeadRequest) ToInput() usecase.CreateLeadInput {
	return usecase.CreateLeadInput{
		CustomerID: r.CustomerID,
		Source:     r.Source,
		Status:     entities.LeadStatus(r.Status),
		Notes:      r.Notes,
	}
}

type UpdateLeadRequest struct {
	Source *string `json:"source"`
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

func (r UpdateLeadRequest) ToPatch() usecase.LeadPatch {
	patch := usecase.LeadPatch{
		Source: r.Source,
		Notes:  r.Notes,
	}
	if r.Status != nil {
		s := entities.LeadStatus(*r.Status)
		patch.Status = &s
	}
	return patch
}
