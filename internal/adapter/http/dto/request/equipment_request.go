package request

import (
	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase"
)

type CreateEquipmentRequest struct {
	Name   string `json:"name" binding:"required"`
	Type   string `json:"type"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (r CreateEquipmentRequest) ToInput() usecase.CreateEquipmentInput {
	return usecase.CreateEquipmentInput{
		Name:   r.Name,
		Type:   r.Type,
		Status: entities.EquipmentStatus(r.Status),
		Notes:  r.Notes,
	}
}

type UpdateEquipmentRequest struct {
	Name   *string `json:"name"`
	Type   *string `json:"type"`
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

func (r UpdateEquipmentRequest) ToPatch() usecase.EquipmentPatch {
	patch := usecase.EquipmentPatch{
		Name:  r.Name,
		Type:  r.Type,
		Notes: r.Notes,
	}
	if r.Status != nil {
		s := entities.EquipmentStatus(*r.Status)
		patch.Status = &s
	}
	return patch
}
