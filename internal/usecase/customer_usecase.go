package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrInvalidCustomerName = errors.New("invalid customer name")
)

// CreateCustomerInput carries the writable customer fields.
type CreateCustomerInput struct {
	Name           string
	CompanyName    *string
	Phone          string
	Email          string
	BillingAddress string
	ServiceAddress string
	Notes          string
	Tags           []string
}

// CustomerPatch lists the optional fields of a partial update. Nil means
// "leave unchanged"; an explicit clear is not representable (see DESIGN.md).
type CustomerPatch struct {
	Name           *string
	CompanyName    *string
	Phone          *string
	Email          *string
	BillingAddress *string
	ServiceAddress *string
	Notes          *string
	Tags           *[]string
}

// ICustomerUseCase exposes customer operations. Deleting a customer removes
// its leads, estimates, jobs and invoices in one transaction.

type ICustomerUseCase interface {
	Create(ctx context.Context, in CreateCustomerInput) (entities.Customer, error)
	GetByID(ctx context.Context, id snowflake.ID) (entities.Customer, error)
	Update(ctx context.Context, id snowflake.ID, patch CustomerPatch) (entities.Customer, error)
	List(ctx context.Context, f interfaces.CustomerFilter) ([]entities.Customer, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

type CustomerUseCase struct {
	uow  interfaces.UnitOfWork
	node *snowflake.Node
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(uow interfaces.UnitOfWork, node *snowflake.Node) *CustomerUseCase {
	return &CustomerUseCase{uow: uow, node: node}
}

func (u *CustomerUseCase) Create(ctx context.Context, in CreateCustomerInput) (entities.Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return entities.Customer{}, ErrInvalidCustomerName
	}

	c := entities.Customer{
		ID:             u.node.Generate(),
		Name:           strings.TrimSpace(in.Name),
		CompanyName:    in.CompanyName,
		Phone:          in.Phone,
		Email:          in.Email,
		BillingAddress: in.BillingAddress,
		ServiceAddress: in.ServiceAddress,
		Notes:          in.Notes,
		Tags:           datatypes.NewJSONSlice(in.Tags),
	}
	if err := u.uow.Customers().Create(ctx, &c); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id snowflake.ID) (entities.Customer, error) {
	c, err := u.uow.Customers().GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == 0 {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id snowflake.ID, patch CustomerPatch) (entities.Customer, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.CompanyName != nil {
		c.CompanyName = patch.CompanyName
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.BillingAddress != nil {
		c.BillingAddress = *patch.BillingAddress
	}
	if patch.ServiceAddress != nil {
		c.ServiceAddress = *patch.ServiceAddress
	}
	if patch.Notes != nil {
		c.Notes = *patch.Notes
	}
	if patch.Tags != nil {
		c.Tags = datatypes.NewJSONSlice(*patch.Tags)
	}

	if err := u.uow.Customers().Update(ctx, &c); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context, f interfaces.CustomerFilter) ([]entities.Customer, error) {
	return u.uow.Customers().List(ctx, f)
}

// Delete removes the customer and everything it owns. The ownership graph is
// walked leaf-first so no orphan rows survive a partial failure.
func (u *CustomerUseCase) Delete(ctx context.Context, id snowflake.ID) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}

	return u.uow.Do(ctx, func(tx interfaces.Repositories) error {
		if err := tx.Invoices().DeleteByCustomerID(ctx, id); err != nil {
			return err
		}
		if err := tx.Jobs().DeleteByCustomerID(ctx, id); err != nil {
			return err
		}
		if err := tx.Estimates().DeleteByCustomerID(ctx, id); err != nil {
			return err
		}
		if err := tx.Leads().DeleteByCustomerID(ctx, id); err != nil {
			return err
		}
		return tx.Customers().Delete(ctx, id)
	})
}
