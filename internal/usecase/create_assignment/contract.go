package create_assignment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	// LockByID получает сотрудника и блокирует его строку до конца транзакции
	LockByID(ctx context.Context, id string) (*domain.Employee, error)
}

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error)
	List(ctx context.Context, filter domain.AssignmentsFilter) ([]*domain.Assignment, error)
}

// Notifier отправка подтверждения клиенту
type Notifier interface {
	SendAssignmentConfirmation(ctx context.Context, assignment *domain.Assignment, employee *domain.Employee) error
}

// AssignmentRecorder приемник метрик назначений
type AssignmentRecorder interface {
	IncAssignmentConflict(operation string)
	IncAssignmentCreated()
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// IDGenerator генератор идентификаторов
type IDGenerator interface {
	NewID() string
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
