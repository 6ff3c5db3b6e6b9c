package interfaces

import (
	"context"

	"github.com/bwmarrin/snowflake"

	"arborgold/internal/domain/entities"
)

// CustomerFilter narrows customer listings. Q matches name, company name and
// email case-insensitively; Tag matches an entry of the tag set.
type CustomerFilter struct {
	Q   string
	Tag string
}

// CustomerRepository abstracts persistence for Customer. Lookups that find
// nothing return a zero-value entity and a nil error; callers check the id.
type CustomerRepository interface {
	Create(ctx context.Context, c *entities.Customer) error
	GetByID(ctx context.Context, id snowflake.ID) (entities.Customer, error)
	Update(ctx context.Context, c *entities.Customer) error
	List(ctx context.Context, f CustomerFilter) ([]entities.Customer, error)
	Delete(ctx context.Context, id snowflake.ID) error
}
