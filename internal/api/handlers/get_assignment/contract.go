package get_assignment

import (
	"context"

	"github.com/m04kA/SMC-StaffScheduler/internal/service/assignments/models"
)

type AssignmentService interface {
	GetByID(ctx context.Context, id string) (*models.AssignmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
