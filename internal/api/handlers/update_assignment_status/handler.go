package update_assignment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/assignments"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/assignments/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус назначения"
	msgInvalidTransition  = "недопустимая смена статуса назначения"
	msgAssignmentNotFound = "назначение не найдено"
)

type Handler struct {
	service AssignmentService
	logger  Logger
}

func NewHandler(service AssignmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/assignments/{assignmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	assignmentID := mux.Vars(r)["assignmentId"]

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /assignments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	assignment, err := h.service.UpdateStatus(r.Context(), assignmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, assignments.ErrAssignmentNotFound):
			h.logger.Warn("PATCH /assignments/{id}/status - Assignment not found: assignment_id=%s", assignmentID)
			handlers.RespondNotFound(w, msgAssignmentNotFound)

		case errors.Is(err, assignments.ErrInvalidStatusTransition):
			h.logger.Warn("PATCH /assignments/{id}/status - Invalid transition: assignment_id=%s, status=%s", assignmentID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, assignments.ErrInvalidInput):
			h.logger.Warn("PATCH /assignments/{id}/status - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /assignments/{id}/status - Failed to update status: assignment_id=%s, error=%v", assignmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /assignments/{id}/status - Status updated: assignment_id=%s, status=%s", assignmentID, assignment.Status)
	handlers.RespondJSON(w, http.StatusOK, assignment)
}
