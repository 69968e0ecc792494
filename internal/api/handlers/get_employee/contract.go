package get_employee

import (
	"context"

	"github.com/m04kA/SMC-StaffScheduler/internal/service/employees/models"
)

type EmployeeService interface {
	GetByID(ctx context.Context, id string) (*models.EmployeeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
