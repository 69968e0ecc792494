package create_assignment

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/assignments/models"
	createAssignment "github.com/m04kA/SMC-StaffScheduler/internal/usecase/create_assignment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimestamp   = "некорректный формат времени, ожидается RFC 3339"
	msgInvalidInput       = "некорректные данные назначения"
	msgStartInPast        = "нельзя создать назначение на прошедшее время"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgSlotOccupied       = "выбранное время уже занято"
)

type Handler struct {
	useCase  CreateAssignmentUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateAssignmentUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/assignments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAssignmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assignments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /assignments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAssignment.ErrSlotOccupied):
			h.logger.Warn("POST /assignments - Slot occupied: employee_id=%s, start=%s", req.EmployeeID, req.StartTime)
			handlers.RespondConflict(w, msgSlotOccupied)

		case errors.Is(err, createAssignment.ErrEmployeeNotFound):
			h.logger.Warn("POST /assignments - Employee not found: employee_id=%s", req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, createAssignment.ErrStartInPast):
			h.logger.Warn("POST /assignments - Start in past: employee_id=%s, start=%s", req.EmployeeID, req.StartTime)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, createAssignment.ErrInvalidInput):
			h.logger.Warn("POST /assignments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /assignments - Failed to create assignment: employee_id=%s, error=%v", req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /assignments - Assignment created: assignment_id=%s, employee_id=%s",
		result.Assignment.ID, result.Assignment.EmployeeID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomain(result.Assignment, h.location))
}
