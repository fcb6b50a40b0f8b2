package repository

import (
	"context"

	"github.com/sarisense/sarisense-api/internal/domain/entity"
)

// SettingsRepository defines the interface for store settings operations.
// Settings are a singleton row created on first read.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.StoreSettings, error)
	Update(ctx context.Context, settings *entity.StoreSettings) error
}
