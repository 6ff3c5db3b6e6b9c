package repository

import (
	"context"

	"gorm.io/gorm"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

type SettingsGormRepository struct {
	db *gorm.DB
}

var _ interfaces.SettingsRepository = (*SettingsGormRepository)(nil)

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

func (r *SettingsGormRepository) Get(ctx context.Context) (entities.Settings, error) {
	var s entities.Settings
	err := r.db.WithContext(ctx).First(&s, "id = ?", entities.SettingsID).Error
	if err != nil {
		return entities.Settings{}, ignoreNotFound(err)
	}
	return s, nil
}

func (r *SettingsGormRepository) Save(ctx context.Context, s *entities.Settings) error {
	return r.db.WithContext(ctx).Save(s).Error
}
