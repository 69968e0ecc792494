package get_time_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/api/handlers"
	getTimeSlots "github.com/m04kA/SMC-StaffScheduler/internal/usecase/get_time_slots"
)

const (
	msgMissingDates     = "параметры startDate и endDate обязательны"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "некорректные параметры запроса"
	msgRangeTooLarge    = "слишком большой диапазон дат"
	msgEmployeeNotFound = "сотрудник не найден"
)

type Handler struct {
	useCase  GetTimeSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/calendar/slots?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD&employeeId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startDate, err := handlers.QueryDate(r, "startDate", h.location)
	if err != nil {
		h.logger.Warn("GET /calendar/slots - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := handlers.QueryDate(r, "endDate", h.location)
	if err != nil {
		h.logger.Warn("GET /calendar/slots - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if startDate == nil || endDate == nil {
		h.logger.Warn("GET /calendar/slots - Missing date range")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getTimeSlots.Request{
		StartDate:  *startDate,
		EndDate:    *endDate,
		EmployeeID: handlers.QueryString(r, "employeeId"),
	})
	if err != nil {
		switch {
		case errors.Is(err, getTimeSlots.ErrRangeTooLarge):
			h.logger.Warn("GET /calendar/slots - Range too large: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getTimeSlots.ErrEmployeeNotFound):
			h.logger.Warn("GET /calendar/slots - Employee not found: %v", err)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, getTimeSlots.ErrInvalidInput):
			h.logger.Warn("GET /calendar/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /calendar/slots - Failed to get time slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
