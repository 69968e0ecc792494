package update_assignment_status

import (
	"context"

	"github.com/m04kA/SMC-StaffScheduler/internal/service/assignments/models"
)

type AssignmentService interface {
	UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.AssignmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
