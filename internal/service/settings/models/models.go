package models

import (
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	"github.com/m04kA/SMC-StaffScheduler/pkg/types"
)

// UpdateSettingsRequest запрос на обновление настроек
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	WorkStartTime       *types.TimeString `json:"workStartTime,omitempty"`
	WorkEndTime         *types.TimeString `json:"workEndTime,omitempty"`
	SlotDurationMinutes *int              `json:"slotDuration,omitempty"`
}

// SettingsResponse ответ с настройками календаря
type SettingsResponse struct {
	WorkStartTime       types.TimeString `json:"workStartTime"`
	WorkEndTime         types.TimeString `json:"workEndTime"`
	SlotDurationMinutes int              `json:"slotDuration"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

// FromDomain конвертирует доменную модель в ответ
func FromDomain(s *domain.CalendarSettings) *SettingsResponse {
	return &SettingsResponse{
		WorkStartTime:       s.WorkStartTime,
		WorkEndTime:         s.WorkEndTime,
		SlotDurationMinutes: s.SlotDurationMinutes,
		UpdatedAt:           s.UpdatedAt,
	}
}
