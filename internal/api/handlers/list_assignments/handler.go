package list_assignments

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/assignments"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/assignments/models"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	service  AssignmentService
	location *time.Location
	logger   Logger
}

func NewHandler(service AssignmentService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/assignments?employeeId=&status=&startDate=&endDate=
// endDate включается целиком
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startDate, err := handlers.QueryDate(r, "startDate", h.location)
	if err != nil {
		h.logger.Warn("GET /assignments - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := handlers.QueryDate(r, "endDate", h.location)
	if err != nil {
		h.logger.Warn("GET /assignments - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.ListAssignmentsRequest{
		EmployeeID: handlers.QueryString(r, "employeeId"),
		Status:     handlers.QueryString(r, "status"),
		StartsFrom: startDate,
	}
	if endDate != nil {
		next := endDate.AddDate(0, 0, 1)
		req.StartsTo = &next
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, assignments.ErrInvalidInput) {
			h.logger.Warn("GET /assignments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("GET /assignments - Failed to list assignments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
