package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

type JobGormRepository struct {
	db *gorm.DB
}

var _ interfaces.JobRepository = (*JobGormRepository)(nil)

func NewJobGormRepository(db *gorm.DB) *JobGormRepository {
	return &JobGormRepository{db: db}
}

func (r *JobGormRepository) preload() *gorm.DB {
	return r.db.
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Preload("EquipmentLinks")
}

func (r *JobGormRepository) Create(ctx context.Context, j *entities.Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *JobGormRepository) GetByID(ctx context.Context, id snowflake.ID) (entities.Job, error) {
	var j entities.Job
	err := r.preload().WithContext(ctx).First(&j, "id = ?", id).Error
	if err != nil {
		return entities.Job{}, ignoreNotFound(err)
	}
	return j, nil
}

func (r *JobGormRepository) Update(ctx context.Context, j *entities.Job) error {
	return r.db.WithContext(ctx).Omit("Tasks", "EquipmentLinks").Save(j).Error
}

func (r *JobGormRepository) List(ctx context.Context, f interfaces.JobFilter) ([]entities.Job, error) {
	q := r.preload().WithContext(ctx).Model(&entities.Job{})
	if f.Status != "" {
		q = q.Where("jobs.status = ?", f.Status)
	}
	if f.CrewID != 0 {
		q = q.Where("jobs.crew_id = ?", f.CrewID)
	}
	if f.CustomerID != 0 {
		q = q.Where("jobs.customer_id = ?", f.CustomerID)
	}
	if f.Start != nil {
		q = q.Where("jobs.scheduled_start >= ?", *f.Start)
	}
	if f.End != nil {
		q = q.Where("jobs.scheduled_start <= ?", *f.End)
	}
	if f.Q != "" {
		like := likePattern(f.Q)
		q = q.Joins("JOIN customers ON customers.id = jobs.customer_id").
			Where("LOWER(customers.name) LIKE ? OR LOWER(customers.company_name) LIKE ?", like, like)
	}

	var jobs []entities.Job
	if err := q.Order("jobs.id DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// LatestByEstimateID returns the most recently created job converted from
// the estimate, or a zero value when none exists.
func (r *JobGormRepository) LatestByEstimateID(ctx context.Context, estimateID snowflake.ID) (entities.Job, error) {
	var j entities.Job
	err := r.preload().WithContext(ctx).
		Where("estimate_id = ?", estimateID).
		Order("id DESC").
		First(&j).Error
	if err != nil {
		return entities.Job{}, ignoreNotFound(err)
	}
	return j, nil
}

func (r *JobGormRepository) Delete(ctx context.Context, id snowflake.ID) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Delete(&entities.JobTask{}, "job_id = ?", id).Error; err != nil {
		return err
	}
	if err := tx.Delete(&entities.JobEquipment{}, "job_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&entities.Job{}, "id = ?", id).Error
}

func (r *JobGormRepository) DeleteByCustomerID(ctx context.Context, customerID snowflake.ID) error {
	tx := r.db.WithContext(ctx)
	jobIDs := tx.Model(&entities.Job{}).Select("id").Where("customer_id = ?", customerID)
	if err := tx.Where("job_id IN (?)", jobIDs).Delete(&entities.JobTask{}).Error; err != nil {
		return err
	}
	if err := tx.Where("job_id IN (?)", jobIDs).Delete(&entities.JobEquipment{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entities.Job{}, "customer_id = ?", customerID).Error
}

func (r *JobGormRepository) AddTask(ctx context.Context, t *entities.JobTask) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *JobGormRepository) GetTask(ctx context.Context, id snowflake.ID) (entities.JobTask, error) {
	var t entities.JobTask
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		return entities.JobTask{}, ignoreNotFound(err)
	}
	return t, nil
}

func (r *JobGormRepository) UpdateTask(ctx context.Context, t *entities.JobTask) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *JobGormRepository) DeleteTask(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).Delete(&entities.JobTask{}, "id = ?", id).Error
}

func (r *JobGormRepository) AddEquipmentLink(ctx context.Context, link *entities.JobEquipment) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *JobGormRepository) GetEquipmentLink(ctx context.Context, jobID, equipmentID snowflake.ID) (entities.JobEquipment, error) {
	var link entities.JobEquipment
	err := r.db.WithContext(ctx).
		First(&link, "job_id = ? AND equipment_id = ?", jobID, equipmentID).Error
	if err != nil {
		return entities.JobEquipment{}, ignoreNotFound(err)
	}
	return link, nil
}

func (r *JobGormRepository) RemoveEquipmentLink(ctx context.Context, jobID, equipmentID snowflake.ID) error {
	return r.db.WithContext(ctx).
		Delete(&entities.JobEquipment{}, "job_id = ? AND equipment_id = ?", jobID, equipmentID).Error
}

func (r *JobGormRepository) RemoveEquipmentLinksByEquipmentID(ctx context.Context, equipmentID snowflake.ID) error {
	return r.db.WithContext(ctx).
		Delete(&entities.JobEquipment{}, "equipment_id = ?", equipmentID).Error
}
