package domain

import (
	"time"

	"github.com/m04kA/SMC-StaffScheduler/pkg/types"
)

// CalendarSettings глобальные настройки календаря (одна запись).
//
// WorkStartTime/WorkEndTime хранятся и отдаются клиенту, но генерация слотов
// их не использует: рабочее окно всегда берется из WorkHours сотрудника.
type CalendarSettings struct {
	WorkStartTime       types.TimeString
	WorkEndTime         types.TimeString
	SlotDurationMinutes int
	UpdatedAt           time.Time
}

// SlotDuration длительность слота
func (s *CalendarSettings) SlotDuration() time.Duration {
	return time.Duration(s.SlotDurationMinutes) * time.Minute
}

// DefaultCalendarSettings настройки по умолчанию
func DefaultCalendarSettings() *CalendarSettings {
	return &CalendarSettings{
		WorkStartTime:       types.TimeString(DefaultWorkStartTime),
		WorkEndTime:         types.TimeString(DefaultWorkEndTime),
		SlotDurationMinutes: DefaultSlotDurationMinutes,
	}
}
