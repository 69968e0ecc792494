package update_employee

import (
	"context"

	"github.com/m04kA/SMC-StaffScheduler/internal/service/employees/models"
)

type EmployeeService interface {
	Update(ctx context.Context, id string, req *models.UpdateEmployeeRequest) (*models.EmployeeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
