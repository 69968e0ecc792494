package get_employee_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffScheduler/internal/api/handlers"
	getSchedule "github.com/m04kA/SMC-StaffScheduler/internal/usecase/get_employee_schedule"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "некорректные параметры запроса"
	msgEmployeeNotFound = "сотрудник не найден"
)

type Handler struct {
	useCase  GetEmployeeScheduleUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetEmployeeScheduleUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/employees/{employeeId}/schedule?startDate=&endDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r, h.location)
	if err != nil {
		h.logger.Warn("GET /employees/{id}/schedule - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSchedule.ErrEmployeeNotFound):
			h.logger.Warn("GET /employees/{id}/schedule - Employee not found: employee_id=%s", req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, getSchedule.ErrInvalidInput):
			h.logger.Warn("GET /employees/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /employees/{id}/schedule - Failed to get schedule: employee_id=%s, error=%v", req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.location))
}

// ParseRequest собирает запрос расписания из пути и query параметров
func ParseRequest(r *http.Request, loc *time.Location) (*getSchedule.Request, error) {
	startDate, err := handlers.QueryDate(r, "startDate", loc)
	if err != nil {
		return nil, err
	}

	endDate, err := handlers.QueryDate(r, "endDate", loc)
	if err != nil {
		return nil, err
	}

	return &getSchedule.Request{
		EmployeeID: mux.Vars(r)["employeeId"],
		StartDate:  startDate,
		EndDate:    endDate,
	}, nil
}
