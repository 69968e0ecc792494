package list_employees

import (
	"context"

	"github.com/m04kA/SMC-StaffScheduler/internal/service/employees/models"
)

type EmployeeService interface {
	List(ctx context.Context) (*models.EmployeeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
