package usecase

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

var (
	ErrEquipmentNotFound      = errors.New("equipment not found")
	ErrInvalidEquipmentStatus = errors.New("invalid equipment status")
)

type CreateEquipmentInput struct {
	Name   string
	Type   string
	Status entities.EquipmentStatus
	Notes  string
}

type EquipmentPatch struct {
	Name   *string
	Type   *string
	Status *entities.EquipmentStatus
	Notes  *string
}

type IEquipmentUseCase interface {
	Create(ctx context.Context, in CreateEquipmentInput) (entities.Equipment, error)
	GetByID(ctx context.Context, id snowflake.ID) (entities.Equipment, error)
	Update(ctx context.Context, id snowflake.ID, patch EquipmentPatch) (entities.Equipment, error)
	List(ctx context.Context, f interfaces.EquipmentFilter) ([]entities.Equipment, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

type EquipmentUseCase struct {
	uow  interfaces.UnitOfWork
	node *snowflake.Node
}

var _ IEquipmentUseCase = (*EquipmentUseCase)(nil)

func NewEquipmentUseCase(uow interfaces.UnitOfWork, node *snowflake.Node) *EquipmentUseCase {
	return &EquipmentUseCase{uow: uow, node: node}
}

func (u *EquipmentUseCase) Create(ctx context.Context, in CreateEquipmentInput) (entities.Equipment, error) {
	status := in.Status
	if status == "" {
		status = entities.EquipmentStatusAvailable
	}
	if !entities.ValidEquipmentStatus(status) {
		return entities.Equipment{}, ErrInvalidEquipmentStatus
	}

	e := entities.Equipment{
		ID:     u.node.Generate(),
		Name:   in.Name,
		Type:   in.Type,
		Status: status,
		Notes:  in.Notes,
	}
	if err := u.uow.Equipment().Create(ctx, &e); err != nil {
		return entities.Equipment{}, err
	}
	return e, nil
}

func (u *EquipmentUseCase) GetByID(ctx context.Context, id snowflake.ID) (entities.Equipment, error) {
	e, err := u.uow.Equipment().GetByID(ctx, id)
	if err != nil {
		return entities.Equipment{}, err
	}
	if e.ID == 0 {
		return entities.Equipment{}, ErrEquipmentNotFound
	}
	return e, nil
}

func (u *EquipmentUseCase) Update(ctx context.Context, id snowflake.ID, patch EquipmentPatch) (entities.Equipment, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Equipment{}, err
	}

	if patch.Status != nil && !entities.ValidEquipmentStatus(*patch.Status) {
		return entities.Equipment{}, ErrInvalidEquipmentStatus
	}

	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Type != nil {
		e.Type = *patch.Type
	}
	if patch.Status != nil {
		e.Status = *patch.Status
	}
	if patch.Notes != nil {
		e.Notes = *patch.Notes
	}

	if err := u.uow.Equipment().Update(ctx, &e); err != nil {
		return entities.Equipment{}, err
	}
	return e, nil
}

func (u *EquipmentUseCase) List(ctx context.Context, f interfaces.EquipmentFilter) ([]entities.Equipment, error) {
	return u.uow.Equipment().List(ctx, f)
}

// Delete removes the equipment and detaches it from every job first so no
// dangling join rows survive.
func (u *EquipmentUseCase) Delete(ctx context.Context, id snowflake.ID) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.uow.Do(ctx, func(tx interfaces.Repositories) error {
		if err := tx.Jobs().RemoveEquipmentLinksByEquipmentID(ctx, id); err != nil {
			return err
		}
		return tx.Equipment().Delete(ctx, id)
	})
}
