package interfaces

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"

	"arborgold/internal/domain/entities"
)

type JobFilter struct {
	Q          string
	Status     entities.JobStatus
	CrewID     snowflake.ID
	CustomerID snowflake.ID
	Start      *time.Time
	End        *time.Time
}

// JobRepository abstracts persistence for Job and its owned tasks and
// equipment links. Reads preload both child sets.
type JobRepository interface {
	Create(ctx context.Context, j *entities.Job) error
	GetByID(ctx context.Context, id snowflake.ID) (entities.Job, error)
	Update(ctx context.Context, j *entities.Job) error
	List(ctx context.Context, f JobFilter) ([]entities.Job, error)
	LatestByEstimateID(ctx context.Context, estimateID snowflake.ID) (entities.Job, error)
	Delete(ctx context.Context, id snowflake.ID) error
	DeleteByCustomerID(ctx context.Context, customerID snowflake.ID) error

	AddTask(ctx context.Context, t *entities.JobTask) error
	GetTask(ctx context.Context, id snowflake.ID) (entities.JobTask, error)
	UpdateTask(ctx context.Context, t *entities.JobTask) error
	DeleteTask(ctx context.Context, id snowflake.ID) error

	AddEquipmentLink(ctx context.Context, link *entities.JobEquipment) error
	GetEquipmentLink(ctx context.Context, jobID, equipmentID snowflake.ID) (entities.JobEquipment, error)
	RemoveEquipmentLink(ctx context.Context, jobID, equipmentID snowflake.ID) error
	RemoveEquipmentLinksByEquipmentID(ctx context.Context, equipmentID snowflake.ID) error
}
