package entities

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// JobStatus covers scheduled/performed work. completed_at is set the first
// time the job enters completed, via direct update or the complete flow.

type JobStatus string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCanceled   JobStatus = "canceled"
)

func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusScheduled, JobStatusInProgress, JobStatusCompleted, JobStatusCanceled:
		return true
	}
	return false
}

// Job is scheduled or performed work for a customer, optionally traced back
// to the estimate it was converted from. A job has at most one invoice,
// enforced by the unique index on invoices.job_id.
type Job struct {
	ID             snowflake.ID    `gorm:"primaryKey" json:"id"`
	CustomerID     snowflake.ID    `gorm:"not null;index" json:"customer_id"`
	EstimateID     *snowflake.ID   `gorm:"index" json:"estimate_id"`
	Status         JobStatus       `gorm:"size:50;not null;default:scheduled" json:"status"`
	ScheduledStart *time.Time      `gorm:"index" json:"scheduled_start"`
	ScheduledEnd   *time.Time      `json:"scheduled_end"`
	CrewID         *snowflake.ID   `gorm:"index" json:"crew_id"`
	Total          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"total"`
	Notes          string          `gorm:"type:text" json:"notes"`
	CompletedAt    *time.Time      `json:"completed_at"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	Tasks          []JobTask      `gorm:"foreignKey:JobID" json:"tasks"`
	EquipmentLinks []JobEquipment `gorm:"foreignKey:JobID" json:"equipment_links"`
}

func (Job) TableName() string { return "jobs" }

// EquipmentIDs projects the join rows into a flat id list for responses.
// It is a read-side projection, never a cached column.
func (j Job) EquipmentIDs() []snowflake.ID {
	ids := make([]snowflake.ID, 0, len(j.EquipmentLinks))
	for _, link := range j.EquipmentLinks {
		ids = append(ids, link.EquipmentID)
	}
	return ids
}

// JobTask is one checklist entry under a job.
type JobTask struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	JobID     snowflake.ID `gorm:"not null;index" json:"job_id"`
	Title     string       `gorm:"size:200;not null" json:"title"`
	Completed bool         `gorm:"not null;default:false" json:"completed"`
	SortOrder int          `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (JobTask) TableName() string { return "job_tasks" }

// JobEquipment links a job to a piece of equipment, unique per pair.
type JobEquipment struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	JobID       snowflake.ID `gorm:"not null;uniqueIndex:uq_job_equipment" json:"job_id"`
	EquipmentID snowflake.ID `gorm:"not null;uniqueIndex:uq_job_equipment" json:"equipment_id"`
	CreatedAt   time.Time    `json:"created_at"`
}

func (JobEquipment) TableName() string { return "job_equipment" }
