package update_employee

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/employees"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/employees/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные сотрудника"
	msgEmployeeNotFound   = "сотрудник не найден"
	msgDuplicateEmail     = "сотрудник с таким email уже существует"
)

type Handler struct {
	service EmployeeService
	logger  Logger
}

func NewHandler(service EmployeeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/employees/{employeeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID := mux.Vars(r)["employeeId"]

	var req models.UpdateEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /employees/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	employee, err := h.service.Update(r.Context(), employeeID, &req)
	if err != nil {
		switch {
		case errors.Is(err, employees.ErrEmployeeNotFound):
			h.logger.Warn("PUT /employees/{id} - Employee not found: employee_id=%s", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, employees.ErrInvalidInput):
			h.logger.Warn("PUT /employees/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, employees.ErrDuplicateEmail):
			h.logger.Warn("PUT /employees/{id} - Duplicate email: employee_id=%s", employeeID)
			handlers.RespondConflict(w, msgDuplicateEmail)

		default:
			h.logger.Error("PUT /employees/{id} - Failed to update employee: employee_id=%s, error=%v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, employee)
}
