package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

type EstimateGormRepository struct {
	db *gorm.DB
}

var _ interfaces.EstimateRepository = (*EstimateGormRepository)(nil)

func NewEstimateGormRepository(db *gorm.DB) *EstimateGormRepository {
	return &EstimateGormRepository{db: db}
}

func (r *EstimateGormRepository) preload() *gorm.DB {
	return r.db.Preload("LineItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, id ASC")
	})
}

func (r *EstimateGormRepository) Create(ctx context.Context, e *entities.Estimate) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EstimateGormRepository) GetByID(ctx context.Context, id snowflake.ID) (entities.Estimate, error) {
	var e entities.Estimate
	err := r.preload().WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return entities.Estimate{}, ignoreNotFound(err)
	}
	return e, nil
}

func (r *EstimateGormRepository) Update(ctx context.Context, e *entities.Estimate) error {
	return r.db.WithContext(ctx).Omit("LineItems").Save(e).Error
}

func (r *EstimateGormRepository) ReplaceLineItems(ctx context.Context, estimateID snowflake.ID, items []entities.EstimateLineItem) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Delete(&entities.EstimateLineItem{}, "estimate_id = ?", estimateID).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

func (r *EstimateGormRepository) List(ctx context.Context, f interfaces.EstimateFilter) ([]entities.Estimate, error) {
	q := r.preload().WithContext(ctx).Model(&entities.Estimate{})
	if f.CustomerID != 0 {
		q = q.Where("estimates.customer_id = ?", f.CustomerID)
	}
	if f.Status != "" {
		q = q.Where("estimates.status = ?", f.Status)
	}
	if f.Q != "" {
		like := likePattern(f.Q)
		q = q.Joins("JOIN customers ON customers.id = estimates.customer_id").
			Where("LOWER(customers.name) LIKE ? OR LOWER(customers.company_name) LIKE ?", like, like)
	}

	var estimates []entities.Estimate
	if err := q.Order("estimates.id DESC").Find(&estimates).Error; err != nil {
		return nil, err
	}
	return estimates, nil
}

// ListRecentPriced returns the newest estimates with a positive total, used
// as pricing history for suggestions.
func (r *EstimateGormRepository) ListRecentPriced(ctx context.Context, limit int) ([]entities.Estimate, error) {
	var estimates []entities.Estimate
	err := r.db.WithContext(ctx).
		Where("total > 0").
		Order("id DESC").
		Limit(limit).
		Find(&estimates).Error
	if err != nil {
		return nil, err
	}
	return estimates, nil
}

func (r *EstimateGormRepository) Delete(ctx context.Context, id snowflake.ID) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Delete(&entities.EstimateLineItem{}, "estimate_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&entities.Estimate{}, "id = ?", id).Error
}

func (r *EstimateGormRepository) DeleteByCustomerID(ctx context.Context, customerID snowflake.ID) error {
	tx := r.db.WithContext(ctx)
	err := tx.
		Where("estimate_id IN (?)", tx.Model(&entities.Estimate{}).Select("id").Where("customer_id = ?", customerID)).
		Delete(&entities.EstimateLineItem{}).Error
	if err != nil {
		return err
	}
	return tx.Delete(&entities.Estimate{}, "customer_id = ?", customerID).Error
}
