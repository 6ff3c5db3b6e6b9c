package interfaces

import (
	"context"

	"arborgold/internal/domain/entities"
)

// SettingsRepository persists the singleton settings row (fixed id).
type SettingsRepository interface {
	Get(ctx context.Context) (entities.Settings, error)
	Save(ctx context.Context, s *entities.Settings) error
}
