package get_employee_schedule

import (
	"context"

	getSchedule "github.com/m04kA/SMC-StaffScheduler/internal/usecase/get_employee_schedule"
)

type GetEmployeeScheduleUseCase interface {
	Execute(ctx context.Context, req *getSchedule.Request) (*getSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
