package get_employee_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
}

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	List(ctx context.Context, filter domain.AssignmentsFilter) ([]*domain.Assignment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
