package settings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/settings/models"
)

// Service сервис глобальных настроек календаря
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает текущие настройки календаря
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	return models.FromDomain(settings), nil
}

// Update частично обновляет настройки календаря
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating calendar settings")

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Update: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	if req.WorkStartTime != nil {
		settings.WorkStartTime = *req.WorkStartTime
	}
	if req.WorkEndTime != nil {
		settings.WorkEndTime = *req.WorkEndTime
	}
	if req.SlotDurationMinutes != nil {
		settings.SlotDurationMinutes = *req.SlotDurationMinutes
	}

	if err := validateSettings(settings); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.settingsRepo.Upsert(ctx, settings)
	if err != nil {
		s.logger.Error("Update: failed to save settings: %v", err)
		return nil, fmt.Errorf("%w: failed to save settings: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings saved, slot=%dmin, work=%s-%s",
		updated.SlotDurationMinutes, updated.WorkStartTime, updated.WorkEndTime)
	return models.FromDomain(updated), nil
}

// validateSettings валидирует параметры календаря
func validateSettings(s *domain.CalendarSettings) error {
	if s.SlotDurationMinutes < domain.MinSlotDurationMinutes || s.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDuration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if err := s.WorkStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: workStartTime: %v", ErrInvalidInput, err)
	}
	if err := s.WorkEndTime.Validate(); err != nil {
		return fmt.Errorf("%w: workEndTime: %v", ErrInvalidInput, err)
	}
	if !s.WorkStartTime.IsBefore(s.WorkEndTime) {
		return fmt.Errorf("%w: workStartTime must be before workEndTime", ErrInvalidInput)
	}

	return nil
}
