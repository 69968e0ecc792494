package delete_assignment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/assignments"
)

const msgAssignmentNotFound = "назначение не найдено"

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

// Handle DELETE /api/v1/assignments/{assignmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	assignmentID := mux.Vars(r)["assignmentId"]

	if err := h.service.Delete(r.Context(), assignmentID); err != nil {
		if errors.Is(err, assignments.ErrAssignmentNotFound) {
			h.logger.Warn("DELETE /assignments/{id} - Assignment not found: assignment_id=%s", assignmentID)
			handlers.RespondNotFound(w, msgAssignmentNotFound)
			return
		}
		h.logger.Error("DELETE /assignments/{id} - Failed to delete assignment: assignment_id=%s, error=%v", assignmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /assignments/{id} - Assignment deleted: assignment_id=%s", assignmentID)
	handlers.RespondNoContent(w)
}
