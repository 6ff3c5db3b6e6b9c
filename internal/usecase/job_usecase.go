package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"arborgold/internal/domain/billing"
	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

var (
	ErrJobNotFound           = errors.New("job not found")
	ErrJobTaskNotFound       = errors.New("job task not found")
	ErrInvalidJobStatus      = errors.New("invalid job status")
	ErrJobEstimateMismatch   = errors.New("estimate does not belong to the job customer")
	ErrTaskJobMismatch       = errors.New("task does not belong to the job")
	ErrEquipmentLinkNotFound = errors.New("equipment is not assigned to the job")
)

type CreateJobInput struct {
	CustomerID     snowflake.ID
	EstimateID     *snowflake.ID
	Status         entities.JobStatus
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	CrewID         *snowflake.ID
	Total          decimal.Decimal
	Notes          string
	Tasks          []string
	EquipmentIDs   []snowflake.ID
}

type JobPatch struct {
	Status         *entities.JobStatus
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	CrewID         *snowflake.ID
	Total          *decimal.Decimal
	Notes          *string
	CompletedAt    *time.Time
}

type CreateTaskInput struct {
	Title     string
	SortOrder *int
}

type TaskPatch struct {
	Title     *string
	Completed *bool
	SortOrder *int
}

type IJobUseCase interface {
	Create(ctx context.Context, in CreateJobInput) (entities.Job, error)
	GetByID(ctx context.Context, id snowflake.ID) (entities.Job, error)
	Update(ctx context.Context, id snowflake.ID, patch JobPatch) (entities.Job, error)
	List(ctx context.Context, f interfaces.JobFilter) ([]entities.Job, error)
	Delete(ctx context.Context, id snowflake.ID) error
	Complete(ctx context.Context, id snowflake.ID, invoiceTax decimal.Decimal) (entities.Invoice, error)

	AddTask(ctx context.Context, jobID snowflake.ID, in CreateTaskInput) (entities.JobTask, error)
	UpdateTask(ctx context.Context, jobID, taskID snowflake.ID, patch TaskPatch) (entities.JobTask, error)
	DeleteTask(ctx context.Context, jobID, taskID snowflake.ID) error

	AssignEquipment(ctx context.Context, jobID, equipmentID snowflake.ID) (entities.Job, error)
	RemoveEquipment(ctx context.Context, jobID, equipmentID snowflake.ID) (entities.Job, error)
}

type JobUseCase struct {
	uow  interfaces.UnitOfWork
	node *snowflake.Node
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(uow interfaces.UnitOfWork, node *snowflake.Node) *JobUseCase {
	return &JobUseCase{uow: uow, node: node}
}

func (u *JobUseCase) Create(ctx context.Context, in CreateJobInput) (entities.Job, error) {
	customer, err := u.uow.Customers().GetByID(ctx, in.CustomerID)
	if err != nil {
		return entities.Job{}, err
	}
	if customer.ID == 0 {
		return entities.Job{}, ErrCustomerNotFound
	}

	if in.EstimateID != nil {
		e, err := u.uow.Estimates().GetByID(ctx, *in.EstimateID)
		if err != nil {
			return entities.Job{}, err
		}
		if e.ID == 0 {
			return entities.Job{}, ErrEstimateNotFound
		}
		if e.CustomerID != in.CustomerID {
			return entities.Job{}, ErrJobEstimateMismatch
		}
	}
	if in.CrewID != nil {
		crew, err := u.uow.Crews().GetByID(ctx, *in.CrewID)
		if err != nil {
			return entities.Job{}, err
		}
		if crew.ID == 0 {
			return entities.Job{}, ErrCrewNotFound
		}
	}
	for _, eqID := range in.EquipmentIDs {
		eq, err := u.uow.Equipment().GetByID(ctx, eqID)
		if err != nil {
			return entities.Job{}, err
		}
		if eq.ID == 0 {
			return entities.Job{}, ErrEquipmentNotFound
		}
	}

	status := in.Status
	if status == "" {
		status = entities.JobStatusScheduled
	}
	if !entities.ValidJobStatus(status) {
		return entities.Job{}, ErrInvalidJobStatus
	}

	j := entities.Job{
		ID:             u.node.Generate(),
		CustomerID:     in.CustomerID,
		EstimateID:     in.EstimateID,
		Status:         status,
		ScheduledStart: in.ScheduledStart,
		ScheduledEnd:   in.ScheduledEnd,
		CrewID:         in.CrewID,
		Total:          in.Total,
		Notes:          in.Notes,
	}
	if status == entities.JobStatusCompleted {
		now := time.Now().UTC()
		j.CompletedAt = &now
	}
	for i, title := range in.Tasks {
		j.Tasks = append(j.Tasks, entities.JobTask{
			ID:        u.node.Generate(),
			JobID:     j.ID,
			Title:     title,
			SortOrder: i,
		})
	}
	for _, eqID := range in.EquipmentIDs {
		j.EquipmentLinks = append(j.EquipmentLinks, entities.JobEquipment{
			ID:          u.node.Generate(),
			JobID:       j.ID,
			EquipmentID: eqID,
		})
	}

	if err := u.uow.Jobs().Create(ctx, &j); err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (u *JobUseCase) GetByID(ctx context.Context, id snowflake.ID) (entities.Job, error) {
	j, err := u.uow.Jobs().GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == 0 {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) Update(ctx context.Context, id snowflake.ID, patch JobPatch) (entities.Job, error) {
	j, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}

	if patch.Status != nil && !entities.ValidJobStatus(*patch.Status) {
		return entities.Job{}, ErrInvalidJobStatus
	}
	if patch.CrewID != nil {
		crew, err := u.uow.Crews().GetByID(ctx, *patch.CrewID)
		if err != nil {
			return entities.Job{}, err
		}
		if crew.ID == 0 {
			return entities.Job{}, ErrCrewNotFound
		}
	}

	if patch.ScheduledStart != nil {
		j.ScheduledStart = patch.ScheduledStart
	}
	if patch.ScheduledEnd != nil {
		j.ScheduledEnd = patch.ScheduledEnd
	}
	if patch.CrewID != nil {
		j.CrewID = patch.CrewID
	}
	if patch.Total != nil {
		j.Total = *patch.Total
	}
	if patch.Notes != nil {
		j.Notes = *patch.Notes
	}
	if patch.Status != nil {
		j.Status = *patch.Status
		if j.Status == entities.JobStatusCompleted && j.CompletedAt == nil {
			now := time.Now().UTC()
			j.CompletedAt = &now
		}
	}
	// Explicit timestamp wins over the set-once side effect.
	if patch.CompletedAt != nil {
		j.CompletedAt = patch.CompletedAt
	}

	if err := u.uow.Jobs().Update(ctx, &j); err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (u *JobUseCase) List(ctx context.Context, f interfaces.JobFilter) ([]entities.Job, error) {
	return u.uow.Jobs().List(ctx, f)
}

func (u *JobUseCase) Delete(ctx context.Context, id snowflake.ID) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.uow.Do(ctx, func(tx interfaces.Repositories) error {
		if err := tx.Invoices().DeleteByJobID(ctx, id); err != nil {
			return err
		}
		return tx.Jobs().Delete(ctx, id)
	})
}

// Complete marks the job completed and ensures its invoice exists. The first
// call creates the invoice from job.total plus the supplied tax; every later
// call returns that same invoice untouched.
func (u *JobUseCase) Complete(ctx context.Context, id snowflake.ID, invoiceTax decimal.Decimal) (entities.Invoice, error) {
	j, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	var inv entities.Invoice
	err = u.uow.Do(ctx, func(tx interfaces.Repositories) error {
		now := time.Now().UTC()
		j.Status = entities.JobStatusCompleted
		if j.CompletedAt == nil {
			j.CompletedAt = &now
		}
		if err := tx.Jobs().Update(ctx, &j); err != nil {
			return err
		}

		existing, err := tx.Invoices().GetByJobID(ctx, j.ID)
		if err != nil {
			return err
		}
		if existing.ID != 0 {
			inv = existing
			return nil
		}

		inv = entities.Invoice{
			ID:         u.node.Generate(),
			CustomerID: j.CustomerID,
			JobID:      j.ID,
			Status:     entities.InvoiceStatusUnpaid,
			Subtotal:   j.Total,
			Tax:        invoiceTax,
			Total:      billing.InvoiceTotal(j.Total, invoiceTax),
			IssuedAt:   &now,
		}
		if err := tx.Invoices().Create(ctx, &inv); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				inv, err = tx.Invoices().GetByJobID(ctx, j.ID)
				return err
			}
			return err
		}
		return nil
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (u *JobUseCase) AddTask(ctx context.Context, jobID snowflake.ID, in CreateTaskInput) (entities.JobTask, error) {
	j, err := u.GetByID(ctx, jobID)
	if err != nil {
		return entities.JobTask{}, err
	}

	t := entities.JobTask{
		ID:        u.node.Generate(),
		JobID:     j.ID,
		Title:     in.Title,
		SortOrder: len(j.Tasks),
	}
	if in.SortOrder != nil {
		t.SortOrder = *in.SortOrder
	}
	if err := u.uow.Jobs().AddTask(ctx, &t); err != nil {
		return entities.JobTask{}, err
	}
	return t, nil
}

func (u *JobUseCase) getOwnedTask(ctx context.Context, jobID, taskID snowflake.ID) (entities.JobTask, error) {
	if _, err := u.GetByID(ctx, jobID); err != nil {
		return entities.JobTask{}, err
	}
	t, err := u.uow.Jobs().GetTask(ctx, taskID)
	if err != nil {
		return entities.JobTask{}, err
	}
	if t.ID == 0 {
		return entities.JobTask{}, ErrJobTaskNotFound
	}
	if t.JobID != jobID {
		return entities.JobTask{}, ErrTaskJobMismatch
	}
	return t, nil
}

func (u *JobUseCase) UpdateTask(ctx context.Context, jobID, taskID snowflake.ID, patch TaskPatch) (entities.JobTask, error) {
	t, err := u.getOwnedTask(ctx, jobID, taskID)
	if err != nil {
		return entities.JobTask{}, err
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	if patch.SortOrder != nil {
		t.SortOrder = *patch.SortOrder
	}

	if err := u.uow.Jobs().UpdateTask(ctx, &t); err != nil {
		return entities.JobTask{}, err
	}
	return t, nil
}

func (u *JobUseCase) DeleteTask(ctx context.Context, jobID, taskID snowflake.ID) error {
	t, err := u.getOwnedTask(ctx, jobID, taskID)
	if err != nil {
		return err
	}
	return u.uow.Jobs().DeleteTask(ctx, t.ID)
}

// AssignEquipment links the equipment to the job. Assigning the same pair
// twice is a no-op; the unique pair index backs that up under concurrency.
func (u *JobUseCase) AssignEquipment(ctx context.Context, jobID, equipmentID snowflake.ID) (entities.Job, error) {
	if _, err := u.GetByID(ctx, jobID); err != nil {
		return entities.Job{}, err
	}
	eq, err := u.uow.Equipment().GetByID(ctx, equipmentID)
	if err != nil {
		return entities.Job{}, err
	}
	if eq.ID == 0 {
		return entities.Job{}, ErrEquipmentNotFound
	}

	existing, err := u.uow.Jobs().GetEquipmentLink(ctx, jobID, equipmentID)
	if err != nil {
		return entities.Job{}, err
	}
	if existing.ID == 0 {
		link := entities.JobEquipment{
			ID:          u.node.Generate(),
			JobID:       jobID,
			EquipmentID: equipmentID,
		}
		if err := u.uow.Jobs().AddEquipmentLink(ctx, &link); err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.Job{}, err
		}
	}
	return u.GetByID(ctx, jobID)
}

func (u *JobUseCase) RemoveEquipment(ctx context.Context, jobID, equipmentID snowflake.ID) (entities.Job, error) {
	if _, err := u.GetByID(ctx, jobID); err != nil {
		return entities.Job{}, err
	}
	link, err := u.uow.Jobs().GetEquipmentLink(ctx, jobID, equipmentID)
	if err != nil {
		return entities.Job{}, err
	}
	if link.ID == 0 {
		return entities.Job{}, ErrEquipmentLinkNotFound
	}
	if err := u.uow.Jobs().RemoveEquipmentLink(ctx, jobID, equipmentID); err != nil {
		return entities.Job{}, err
	}
	return u.GetByID(ctx, jobID)
}
