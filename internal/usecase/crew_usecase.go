package usecase

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

var (
	ErrCrewNotFound    = errors.New("crew not found")
	ErrInvalidCrewType = errors.New("invalid crew type")
)

type CreateCrewInput struct {
	Name          string
	Type          entities.CrewType
	Color         *string
	Notes         string
	MemberUserIDs []int64
}

type CrewPatch struct {
	Name          *string
	Type          *entities.CrewType
	Color         *string
	Notes         *string
	MemberUserIDs *[]int64
}

type ICrewUseCase interface {
	Create(ctx context.Context, in CreateCrewInput) (entities.Crew, error)
	GetByID(ctx context.Context, id snowflake.ID) (entities.Crew, error)
	Update(ctx context.Context, id snowflake.ID, patch CrewPatch) (entities.Crew, error)
	List(ctx context.Context) ([]entities.Crew, error)
	Delete(ctx context.Context, id snowflake.ID) error
}

type CrewUseCase struct {
	uow  interfaces.UnitOfWork
	node *snowflake.Node
}

var _ ICrewUseCase = (*CrewUseCase)(nil)

func NewCrewUseCase(uow interfaces.UnitOfWork, node *snowflake.Node) *CrewUseCase {
	return &CrewUseCase{uow: uow, node: node}
}

// buildMembers dedupes user ids so the unique (crew,user) index never trips
// on sloppy input.
func (u *CrewUseCase) buildMembers(crewID snowflake.ID, userIDs []int64) []entities.CrewMember {
	seen := make(map[int64]bool, len(userIDs))
	members := make([]entities.CrewMember, 0, len(userIDs))
	for _, uid := range userIDs {
		if seen[uid] {
			continue
		}
		seen[uid] = true
		members = append(members, entities.CrewMember{
			ID:     u.node.Generate(),
			CrewID: crewID,
			UserID: uid,
		})
	}
	return members
}

func (u *CrewUseCase) Create(ctx context.Context, in CreateCrewInput) (entities.Crew, error) {
	crewType := in.Type
	if crewType == "" {
		crewType = entities.CrewTypeGTC
	}
	if !entities.ValidCrewType(crewType) {
		return entities.Crew{}, ErrInvalidCrewType
	}

	c := entities.Crew{
		ID:    u.node.Generate(),
		Name:  in.Name,
		Type:  crewType,
		Color: in.Color,
		Notes: in.Notes,
	}
	c.Members = u.buildMembers(c.ID, in.MemberUserIDs)

	if err := u.uow.Crews().Create(ctx, &c); err != nil {
		return entities.Crew{}, err
	}
	return c, nil
}

func (u *CrewUseCase) GetByID(ctx context.Context, id snowflake.ID) (entities.Crew, error) {
	c, err := u.uow.Crews().GetByID(ctx, id)
	if err != nil {
		return entities.Crew{}, err
	}
	if c.ID == 0 {
		return entities.Crew{}, ErrCrewNotFound
	}
	return c, nil
}

func (u *CrewUseCase) Update(ctx context.Context, id snowflake.ID, patch CrewPatch) (entities.Crew, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Crew{}, err
	}

	if patch.Type != nil && !entities.ValidCrewType(*patch.Type) {
		return entities.Crew{}, ErrInvalidCrewType
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Type != nil {
		c.Type = *patch.Type
	}
	if patch.Color != nil {
		c.Color = patch.Color
	}
	if patch.Notes != nil {
		c.Notes = *patch.Notes
	}
	if patch.MemberUserIDs != nil {
		c.Members = u.buildMembers(c.ID, *patch.MemberUserIDs)
	}

	err = u.uow.Do(ctx, func(tx interfaces.Repositories) error {
		if patch.MemberUserIDs != nil {
			if err := tx.Crews().ReplaceMembers(ctx, c.ID, c.Members); err != nil {
				return err
			}
		}
		return tx.Crews().Update(ctx, &c)
	})
	if err != nil {
		return entities.Crew{}, err
	}
	return c, nil
}

func (u *CrewUseCase) List(ctx context.Context) ([]entities.Crew, error) {
	return u.uow.Crews().List(ctx)
}

func (u *CrewUseCase) Delete(ctx context.Context, id snowflake.ID) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.uow.Crews().Delete(ctx, id)
}
