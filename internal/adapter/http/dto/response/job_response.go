package response

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"arborgold/internal/domain/entities"
)

type TaskResponse struct {
	ID        snowflake.ID `json:"id"`
	JobID     snowflake.ID `json:"job_id"`
	Title     string       `json:"title"`
	Completed bool         `json:"completed"`
	SortOrder int          `json:"sort_order"`
}

type JobResponse struct {
	ID             snowflake.ID    `json:"id"`
	CustomerID     snowflake.ID    `json:"customer_id"`
	EstimateID     *snowflake.ID   `json:"estimate_id"`
	Status         string          `json:"status"`
	ScheduledStart *time.Time      `json:"scheduled_start"`
	ScheduledEnd   *time.Time      `json:"scheduled_end"`
	CrewID         *snowflake.ID   `json:"crew_id"`
	Total          decimal.Decimal `json:"total"`
	Notes          string          `json:"notes"`
	CompletedAt    *time.Time      `json:"completed_at"`
	Tasks          []TaskResponse  `json:"tasks"`
	EquipmentIDs   []snowflake.ID  `json:"equipment_ids"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func FromTask(t entities.JobTask) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		JobID:     t.JobID,
		Title:     t.Title,
		Completed: t.Completed,
		SortOrder: t.SortOrder,
	}
}

func FromJob(j entities.Job) JobResponse {
	tasks := make([]TaskResponse, 0, len(j.Tasks))
	for _, t := range j.Tasks {
		tasks = append(tasks, FromTask(t))
	}
	return JobResponse{
		ID:             j.ID,
		CustomerID:     j.CustomerID,
		EstimateID:     j.EstimateID,
		Status:         string(j.Status),
		ScheduledStart: j.ScheduledStart,
		ScheduledEnd:   j.ScheduledEnd,
		CrewID:         j.CrewID,
		Total:          j.Total,
		Notes:          j.Notes,
		CompletedAt:    j.CompletedAt,
		Tasks:          tasks,
		EquipmentIDs:   j.EquipmentIDs(),
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
