package update_assignment

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/assignments/models"
	updateAssignment "github.com/m04kA/SMC-StaffScheduler/internal/usecase/update_assignment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimestamp   = "некорректный формат времени, ожидается RFC 3339"
	msgInvalidInput       = "некорректные данные назначения"
	msgAssignmentNotFound = "назначение не найдено"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgSlotOccupied       = "выбранное время уже занято"
	msgNotReschedulable   = "перенести можно только запланированное назначение"
)

type Handler struct {
	useCase  UpdateAssignmentUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase UpdateAssignmentUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle PUT /api/v1/assignments/{assignmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	assignmentID := mux.Vars(r)["assignmentId"]

	var req UpdateAssignmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /assignments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(assignmentID)
	if err != nil {
		h.logger.Warn("PUT /assignments/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateAssignment.ErrAssignmentNotFound):
			h.logger.Warn("PUT /assignments/{id} - Assignment not found: assignment_id=%s", assignmentID)
			handlers.RespondNotFound(w, msgAssignmentNotFound)

		case errors.Is(err, updateAssignment.ErrEmployeeNotFound):
			h.logger.Warn("PUT /assignments/{id} - Employee not found: assignment_id=%s", assignmentID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, updateAssignment.ErrSlotOccupied):
			h.logger.Warn("PUT /assignments/{id} - Slot occupied: assignment_id=%s", assignmentID)
			handlers.RespondConflict(w, msgSlotOccupied)

		case errors.Is(err, updateAssignment.ErrNotReschedulable):
			h.logger.Warn("PUT /assignments/{id} - Not reschedulable: assignment_id=%s", assignmentID)
			handlers.RespondBadRequest(w, msgNotReschedulable)

		case errors.Is(err, updateAssignment.ErrInvalidInput):
			h.logger.Warn("PUT /assignments/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /assignments/{id} - Failed to update assignment: assignment_id=%s, error=%v", assignmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomain(result.Assignment, h.location))
}
