package response

import (
	"time"

	"github.com/bwmarrin/snowflake"

	"arborgold/internal/domain/entities"
)

type CrewResponse struct {
	ID            snowflake.ID `json:"id"`
	Name          string       `json:"name"`
	Type          string       `json:"type"`
	Color         *string      `json:"color"`
	Notes         string       `json:"notes"`
	MemberUserIDs []int64      `json:"member_user_ids"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func FromCrew(c entities.Crew) CrewResponse {
	userIDs := make([]int64, 0, len(c.Members))
	for _, m := range c.Members {
		userIDs = append(userIDs, m.UserID)
	}
	return CrewResponse{
		ID:            c.ID,
		Name:          c.Name,
		Type:          string(c.Type),
		Color:         c.Color,
		Notes:         c.Notes,
		MemberUserIDs: userIDs,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromCrews(crews []entities.Crew) []CrewResponse {
	out := make([]CrewResponse, 0, len(crews))
	for _, c := range crews {
		out = append(out, FromCrew(c))
	}
	return out
}
