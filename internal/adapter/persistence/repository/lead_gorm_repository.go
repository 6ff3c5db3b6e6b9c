package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

type LeadGormRepository struct {
	db *gorm.DB
}

var _ interfaces.LeadRepository = (*LeadGormRepository)(nil)

func NewLeadGormRepository(db *gorm.DB) *LeadGormRepository {
	return &LeadGormRepository{db: db}
}

func (r *LeadGormRepository) Create(ctx context.Context, l *entities.Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LeadGormRepository) GetByID(ctx context.Context, id snowflake.ID) (entities.Lead, error) {
	var l entities.Lead
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if err != nil {
		return entities.Lead{}, ignoreNotFound(err)
	}
	return l, nil
}

func (r *LeadGormRepository) Update(ctx context.Context, l *entities.Lead) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LeadGormRepository) List(ctx context.Context, f interfaces.LeadFilter) ([]entities.Lead, error) {
	q := r.db.WithContext(ctx).Model(&entities.Lead{})
	if f.CustomerID != 0 {
		q = q.Where("leads.customer_id = ?", f.CustomerID)
	}
	if f.Status != "" {
		q = q.Where("leads.status = ?", f.Status)
	}
	if f.Q != "" {
		like := likePattern(f.Q)
		q = q.Joins("JOIN customers ON customers.id = leads.customer_id").
			Where(
				"LOWER(customers.name) LIKE ? OR LOWER(customers.company_name) LIKE ? OR LOWER(customers.email) LIKE ?",
				like, like, like,
			)
	}

	var leads []entities.Lead
	if err := q.Order("leads.id DESC").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *LeadGormRepository) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).Delete(&entities.Lead{}, "id = ?", id).Error
}

func (r *LeadGormRepository) DeleteByCustomerID(ctx context.Context, customerID snowflake.ID) error {
	return r.db.WithContext(ctx).Delete(&entities.Lead{}, "customer_id = ?", customerID).Error
}
