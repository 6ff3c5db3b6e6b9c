package interfaces

import (
	"context"

	"github.com/bwmarrin/snowflake"

	"arborgold/internal/domain/entities"
)

type EquipmentFilter struct {
	Q      string
	Status entities.EquipmentStatus
}

type EquipmentRepository interface {
	Create(ctx context.Context, e *entities.Equipment) error
	GetByID(ctx context.Context, id snowflake.ID) (entities.Equipment, error)
	Update(ctx context.Context, e *entities.Equipment) error
	List(ctx context.Context, f EquipmentFilter) ([]entities.Equipment, error)
	Delete(ctx context.Context, id snowflake.ID) error
}
