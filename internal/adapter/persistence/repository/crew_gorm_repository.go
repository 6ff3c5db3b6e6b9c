package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

type CrewGormRepository struct {
	db *gorm.DB
}

var _ interfaces.CrewRepository = (*CrewGormRepository)(nil)

func NewCrewGormRepository(db *gorm.DB) *CrewGormRepository {
	return &CrewGormRepository{db: db}
}

func (r *CrewGormRepository) Create(ctx context.Context, c *entities.Crew) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CrewGormRepository) GetByID(ctx context.Context, id snowflake.ID) (entities.Crew, error) {
	var c entities.Crew
	err := r.db.WithContext(ctx).Preload("Members").First(&c, "id = ?", id).Error
	if err != nil {
		return entities.Crew{}, ignoreNotFound(err)
	}
	return c, nil
}

func (r *CrewGormRepository) Update(ctx context.Context, c *entities.Crew) error {
	return r.db.WithContext(ctx).Omit("Members").Save(c).Error
}

func (r *CrewGormRepository) ReplaceMembers(ctx context.Context, crewID snowflake.ID, members []entities.CrewMember) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Delete(&entities.CrewMember{}, "crew_id = ?", crewID).Error; err != nil {
		return err
	}
	if len(members) == 0 {
		return nil
	}
	return tx.Create(&members).Error
}

func (r *CrewGormRepository) List(ctx context.Context) ([]entities.Crew, error) {
	var crews []entities.Crew
	err := r.db.WithContext(ctx).Preload("Members").Order("id DESC").Find(&crews).Error
	if err != nil {
		return nil, err
	}
	return crews, nil
}

func (r *CrewGormRepository) Delete(ctx context.Context, id snowflake.ID) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Delete(&entities.CrewMember{}, "crew_id = ?", id).Error; err != nil {
		return err
	}
	return tx.Delete(&entities.Crew{}, "id = ?", id).Error
}
