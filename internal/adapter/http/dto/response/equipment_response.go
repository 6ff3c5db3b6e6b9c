package response

import (
	"time"

	"github.com/bwmarrin/snowflake"

	"arborgold/internal/domain/entities"
)

type EquipmentResponse struct {
	ID        snowflake.ID `json:"id"`
	Name      string       `json:"name"`
	Type      string       `json:"type"`
	Status    string       `json:"status"`
	Notes     string       `json:"notes"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func FromEquipment(e entities.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:        e.ID,
		Name:      e.Name,
		Type:      e.Type,
		Status:    string(e.Status),
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func FromEquipmentList(items []entities.Equipment) []EquipmentResponse {
	out := make([]EquipmentResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromEquipment(e))
	}
	return out
}
