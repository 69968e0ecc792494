package assignments

import (
	"context"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	List(ctx context.Context, filter domain.AssignmentsFilter) ([]*domain.Assignment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AssignmentStatus) error
	Delete(ctx context.Context, id string) error
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
