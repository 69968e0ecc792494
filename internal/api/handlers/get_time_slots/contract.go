package get_time_slots

import (
	"context"

	getTimeSlots "github.com/m04kA/SMC-StaffScheduler/internal/usecase/get_time_slots"
)

type GetTimeSlotsUseCase interface {
	Execute(ctx context.Context, req *getTimeSlots.Request) (*getTimeSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
