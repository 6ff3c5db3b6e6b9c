package request

import (
	"github.com/bwmarrin/snowflake"
)

// AiEstimateRequest carries free-form job details; the whole payload is
// forwarded to the suggestion gateway as context.
type AiEstimateRequest map[string]any

type AiNotesRequest struct {
	RawNotes string `json:"raw_notes" binding:"required"`
}

type AiScheduleRequest struct {
	EstimateID      snowflake.ID `json:"estimate_id" binding:"required"`
	PreferredWindow string       `json:"preferred_window"`
	CrewOptions     []string     `json:"crew_options"`
}
