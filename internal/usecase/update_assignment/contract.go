package update_assignment

import (
	"context"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	LockByID(ctx context.Context, id string) (*domain.Employee, error)
}

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	List(ctx context.Context, filter domain.AssignmentsFilter) ([]*domain.Assignment, error)
	Update(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error)
}

// ConflictRecorder приемник метрик конфликтов
type ConflictRecorder interface {
	IncAssignmentConflict(operation string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
