package settings

import (
	"context"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек календаря
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.CalendarSettings, error)
	Upsert(ctx context.Context, settings *domain.CalendarSettings) (*domain.CalendarSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
