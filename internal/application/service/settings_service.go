package service

import (
	"context"
	"time"

	"github.com/sarisense/sarisense-api/internal/domain/entity"
	"github.com/sarisense/sarisense-api/internal/domain/repository"
	"github.com/sarisense/sarisense-api/pkg/apperror"
)

// SettingsService handles the singleton store settings
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the store settings, creating defaults on first call
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	StoreName      *string
	CurrencyCode   *string
	Timezone       *string
	LowStockAlerts *bool
}

// UpdateSettings updates the store settings row
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.StoreName != nil {
		settings.StoreName = *input.StoreName
	}
	if input.CurrencyCode != nil {
		settings.CurrencyCode = *input.CurrencyCode
	}
	if input.Timezone != nil {
		if _, err := time.LoadLocation(*input.Timezone); err != nil {
			return nil, apperror.NewBadRequestError("Unknown timezone: " + *input.Timezone)
		}
		settings.Timezone = *input.Timezone
	}
	if input.LowStockAlerts != nil {
		settings.LowStockAlerts = *input.LowStockAlerts
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
