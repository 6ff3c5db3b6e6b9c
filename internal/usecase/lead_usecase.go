package usecase

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
)

type CreateLeadInput struct {
	CustomerID snowflake.ID
	Source     *string
	Status     entities.LeadStatus
	Notes      string
}

type LeadPatch struct {
	Source *string
	Status *entities.LeadStatus
	Notes  *string
}

type ILeadUseCase interface {
	Create(ctx context.Context, in CreateLeadInput) (entities.Lead, error)
	GetByID(ctx context.Context, id snowflake.ID) (entities.Lead, error)
	Update(ctx context.Context, id snowflake.ID, patch LeadPatch) (entities.Lead, error)
	List(ctx context.Context, f interfaces.LeadFilter) ([]entities.Lead, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

type LeadUseCase struct {
	uow  interfaces.UnitOfWork
	node *snowflake.Node
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(uow interfaces.UnitOfWork, node *snowflake.Node) *LeadUseCase {
	return &LeadUseCase{uow: uow, node: node}
}

func (u *LeadUseCase) Create(ctx context.Context, in CreateLeadInput) (entities.Lead, error) {
	customer, err := u.uow.Customers().GetByID(ctx, in.CustomerID)
	if err != nil {
		return entities.Lead{}, err
	}
	if customer.ID == 0 {
		return entities.Lead{}, ErrCustomerNotFound
	}

	status := in.Status
	if status == "" {
		status = entities.LeadStatusNew
	}
	if !entities.ValidLeadStatus(status) {
		return entities.Lead{}, ErrInvalidLeadStatus
	}

	l := entities.Lead{
		ID:         u.node.Generate(),
		CustomerID: in.CustomerID,
		Source:     in.Source,
		Status:     status,
		Notes:      in.Notes,
	}
	if err := u.uow.Leads().Create(ctx, &l); err != nil {
		return entities.Lead{}, err
	}
	return l, nil
}

func (u *LeadUseCase) GetByID(ctx context.Context, id snowflake.ID) (entities.Lead, error) {
	l, err := u.uow.Leads().GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == 0 {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) Update(ctx context.Context, id snowflake.ID, patch LeadPatch) (entities.Lead, error) {
	l, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}

	if patch.Status != nil && !entities.ValidLeadStatus(*patch.Status) {
		return entities.Lead{}, ErrInvalidLeadStatus
	}

	if patch.Source != nil {
		l.Source = patch.Source
	}
	if patch.Status != nil {
		l.Status = *patch.Status
	}
	if patch.Notes != nil {
		l.Notes = *patch.Notes
	}

	if err := u.uow.Leads().Update(ctx, &l); err != nil {
		return entities.Lead{}, err
	}
	return l, nil
}

func (u *LeadUseCase) List(ctx context.Context, f interfaces.LeadFilter) ([]entities.Lead, error) {
	return u.uow.Leads().List(ctx, f)
}

func (u *LeadUseCase) Delete(ctx context.Context, id snowflake.ID) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.uow.Leads().Delete(ctx, id)
}
