package request

import (
	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase"
)

type CreateCrewRequest struct {
	Name          string  `json:"name" binding:"required"`
	Type          string  `json:"type"`
	Color         *string `json:"color"`
	Notes         string  `json:"notes"`
	MemberUserIDs []int64 `json:"member_user_ids"`
}

func (r CreateCrewRequest) ToInput() usecase.CreateCrewInput {
	return usecase.CreateCrewInput{
		Name:          r.Name,
		Type:          entities.CrewType(r.Type),
		Color:         r.Color,
		Notes:         r.Notes,
		MemberUserIDs: r.MemberUserIDs,
	}
}

type UpdateCrewRequest struct {
	Name          *string  `json:"name"`
	Type          *string  `json:"type"`
	Color         *string  `json:"color"`
	Notes         *string  `json:"notes"`
	MemberUserIDs *[]int64 `json:"member_user_ids"`
}

func (r UpdateCrewRequest) ToPatch() usecase.CrewPatch {
	patch := usecase.CrewPatch{
		Name:          r.Name,
		Color:         r.Color,
		Notes:         r.Notes,
		MemberUserIDs: r.MemberUserIDs,
	}
	if r.Type != nil {
		t := entities.CrewType(*r.Type)
		patch.Type = &t
	}
	return patch
}
