package request

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase"
)

type CreateJobRequest struct {
	CustomerID     snowflake.ID    `json:"customer_id" binding:"required"`
	EstimateID     *snowflake.ID   `json:"estimate_id"`
	Status         string          `json:"status"`
	ScheduledStart *time.Time      `json:"scheduled_start"`
	ScheduledEnd   *time.Time      `json:"scheduled_end"`
	CrewID         *snowflake.ID   `json:"crew_id"`
	Total          decimal.Decimal `json:"total"`
	Notes          string          `json:"notes"`
	Tasks          []string        `json:"tasks"`
	EquipmentIDs   []snowflake.ID  `json:"equipment_ids"`
}

func (r CreateJobRequest) ToInput() usecase.CreateJobInput {
	return usecase.CreateJobInput{
		CustomerID:     r.CustomerID,
		EstimateID:     r.EstimateID,
		Status:         entities.JobStatus(r.Status),
		ScheduledStart: r.ScheduledStart,
		ScheduledEnd:   r.ScheduledEnd,
		CrewID:         r.CrewID,
		Total:          r.Total,
		Notes:          r.Notes,
		Tasks:          r.Tasks,
		EquipmentIDs:   r.EquipmentIDs,
	}
}

type UpdateJobRequest struct {
	Status         *string          `json:"status"`
	ScheduledStart *time.Time       `json:"scheduled_start"`
	ScheduledEnd   *time.Time       `json:"scheduled_end"`
	CrewID         *snowflake.ID    `json:"crew_id"`
	Total          *decimal.Decimal `json:"total"`
	Notes          *string          `json:"notes"`
	CompletedAt    *time.Time       `json:"completed_at"`
}

func (r UpdateJobRequest) ToPatch() usecase.JobPatch {
	patch := usecase.JobPatch{
		ScheduledStart: r.ScheduledStart,
		ScheduledEnd:   r.ScheduledEnd,
		CrewID:         r.CrewID,
		Total:          r.Total,
		Notes:          r.Notes,
		CompletedAt:    r.CompletedAt,
	}
	if r.Status != nil {
		s := entities.JobStatus(*r.Status)
		patch.Status = &s
	}
	return patch
}

type CompleteJobRequest struct {
	InvoiceTax decimal.Decimal `json:"invoice_tax"`
}

type CreateTaskRequest struct {
	Title     string `json:"title" binding:"required"`
	SortOrder *int   `json:"sort_order"`
}

func (r CreateTaskRequest) ToInput() usecase.CreateTaskInput {
	return usecase.CreateTaskInput{Title: r.Title, SortOrder: r.SortOrder}
}

type UpdateTaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
	SortOrder *int    `json:"sort_order"`
}

func (r UpdateTaskRequest) ToPatch() usecase.TaskPatch {
	return usecase.TaskPatch{Title: r.Title, Completed: r.Completed, SortOrder: r.SortOrder}
}

type AssignEquipmentRequest struct {
	EquipmentID snowflake.ID `json:"equipment_id" binding:"required"`
}
