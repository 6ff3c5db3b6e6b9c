package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"arborgold/internal/domain/entities"
	"arborgold/internal/usecase/interfaces"
)

type SettingsPatch struct {
	CompanyName    *string
	CompanyLogoURL *string
	DefaultTaxRate *decimal.Decimal
}

type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.Settings, error)
	Update(ctx context.Context, patch SettingsPatch) (entities.Settings, error)
}

type SettingsUseCase struct {
	uow interfaces.UnitOfWork
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(uow interfaces.UnitOfWork) *SettingsUseCase {
	return &SettingsUseCase{uow: uow}
}

// Get returns the singleton row, creating the default on first read.
func (u *SettingsUseCase) Get(ctx context.Context) (entities.Settings, error) {
	s, err := u.uow.Settings().Get(ctx)
	if err != nil {
		return entities.Settings{}, err
	}
	if s.ID == 0 {
		s = entities.Settings{ID: entities.SettingsID, CompanyName: "ArborGold Pro"}
		if err := u.uow.Settings().Save(ctx, &s); err != nil {
			return entities.Settings{}, err
		}
	}
	return s, nil
}

func (u *SettingsUseCase) Update(ctx context.Context, patch SettingsPatch) (entities.Settings, error) {
	s, err := u.Get(ctx)
	if err != nil {
		return entities.Settings{}, err
	}

	if patch.CompanyName != nil {
		s.CompanyName = *patch.CompanyName
	}
	if patch.CompanyLogoURL != nil {
		s.CompanyLogoURL = *patch.CompanyLogoURL
	}
	if patch.DefaultTaxRate != nil {
		s.DefaultTaxRate = *patch.DefaultTaxRate
	}

	if err := u.uow.Settings().Save(ctx, &s); err != nil {
		return entities.Settings{}, err
	}
	return s, nil
}
