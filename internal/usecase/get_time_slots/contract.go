package get_time_slots

import (
	"context"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	List(ctx context.Context) ([]*domain.Employee, error)
}

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	List(ctx context.Context, filter domain.AssignmentsFilter) ([]*domain.Assignment, error)
}

// SettingsRepository интерфейс репозитория настроек календаря
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.CalendarSettings, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotsRecorder приемник метрик сгенерированных слотов
type SlotsRecorder interface {
	ObserveTimeSlots(available, occupied int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
