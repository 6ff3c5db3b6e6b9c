package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

type EquipmentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.EquipmentRepository = (*EquipmentGormRepository)(nil)

func NewEquipmentGormRepository(db *gorm.DB) *EquipmentGormRepository {
	return &EquipmentGormRepository{db: db}
}

func (r *EquipmentGormRepository) Create(ctx context.Context, e *entities.Equipment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EquipmentGormRepository) GetByID(ctx context.Context, id snowflake.ID) (entities.Equipment, error) {
	var e entities.Equipment
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return entities.Equipment{}, ignoreNotFound(err)
	}
	return e, nil
}

func (r *EquipmentGormRepository) Update(ctx context.Context, e *entities.Equipment) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EquipmentGormRepository) List(ctx context.Context, f interfaces.EquipmentFilter) ([]entities.Equipment, error) {
	q := r.db.WithContext(ctx).Model(&entities.Equipment{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Q != "" {
		q = q.Where("LOWER(name) LIKE ?", likePattern(f.Q))
	}

	var equipment []entities.Equipment
	if err := q.Order("id DESC").Find(&equipment).Error; err != nil {
		return nil, err
	}
	return equipment, nil
}

func (r *EquipmentGormRepository) Delete(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).Delete(&entities.Equipment{}, "id = ?", id).Error
}
