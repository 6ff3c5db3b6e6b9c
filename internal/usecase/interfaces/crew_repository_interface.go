package interfaces

import (
	"context"

	"github.com/bwmarrin/snowflake"

	"arborgold/internal/domain/entities"
)

type CrewRepository interface {
	Create(ctx context.Context, c *entities.Crew) error
	GetByID(ctx context.Context, id snowflake.ID) (entities.Crew, error)
	Update(ctx context.Context, c *entities.Crew) error
	ReplaceMembers(ctx context.Context, crewID snowflake.ID, members []entities.CrewMember) error
	List(ctx context.Context) ([]entities.Crew, error)
	Delete(ctx context.Context, id snowflake.ID) error
}
