package export_employee_schedule

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/api/handlers"
	scheduleHandler "github.com/m04kA/SMC-StaffScheduler/internal/api/handlers/get_employee_schedule"
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
	now      func() time.Time
	logger   Logger
}

func NewHandler(useCase GetEmployeeScheduleUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// Handle GET /api/v1/employees/{employeeId}/schedule.ics?startDate=&endDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := scheduleHandler.ParseRequest(r, h.location)
	if err != nil {
		h.logger.Warn("GET /employees/{id}/schedule.ics - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSchedule.ErrEmployeeNotFound):
			h.logger.Warn("GET /employees/{id}/schedule.ics - Employee not found: employee_id=%s", req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, getSchedule.ErrInvalidInput):
			h.logger.Warn("GET /employees/{id}/schedule.ics - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /employees/{id}/schedule.ics - Failed to get schedule: employee_id=%s, error=%v", req.EmployeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// VCALENDAR без компонентов недопустим (RFC 5545)
	if len(result.Assignments) == 0 {
		handlers.RespondNoContent(w)
		return
	}

	// Кодируем в буфер, чтобы при ошибке вернуть 500, а не обрезанный файл
	var buf bytes.Buffer
	if err := WriteCalendar(&buf, BuildCalendar(result, h.now())); err != nil {
		h.logger.Error("GET /employees/{id}/schedule.ics - Failed to encode calendar: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="schedule-%s.ics"`, result.Employee.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
