package interfaces

import (
	"context"

	"github.com/bwmarrin/snowflake"

	"arborgold/internal/domain/entities"
)

type EstimateFilter struct {
	Q          string
	Status     entities.EstimateStatus
	CustomerID snowflake.ID
}

// EstimateRepository abstracts persistence for Estimate and its owned line
// items. Reads preload line items ordered by sort_order.
type EstimateRepository interface {
	Create(ctx context.Context, e *entities.Estimate) error
	GetByID(ctx context.Context, id snowflake.ID) (entities.Estimate, error)
	Update(ctx context.Context, e *entities.Estimate) error
	ReplaceLineItems(ctx context.Context, estimateID snowflake.ID, items []entities.EstimateLineItem) error
	List(ctx context.Context, f EstimateFilter) ([]entities.Estimate, error)
	ListRecentPriced(ctx context.Context, limit int) ([]entities.Estimate, error)
	Delete(ctx context.Context, id snowflake.ID) error
	DeleteByCustomerID(ctx context.Context, customerID snowflake.ID) error
}
