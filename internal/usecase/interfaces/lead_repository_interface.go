package interfaces

import (
	"context"

	"github.com/bwmarrin/snowflake"

	"arborgold/internal/domain/entities"
)

type LeadFilter struct {
	Q          string
	Status     entities.LeadStatus
	CustomerID snowflake.ID
}

type LeadRepository interface {
	Create(ctx context.Context, l *entities.Lead) error
	GetByID(ctx context.Context, id snowflake.ID) (entities.Lead, error)
	Update(ctx context.Context, l *entities.Lead) error
	List(ctx context.Context, f LeadFilter) ([]entities.Lead, error)
	Delete(ctx context.Context, id snowflake.ID) error
	DeleteByCustomerID(ctx context.Context, customerID snowflake.ID) error
}
