package get_employee

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/employees"
)

const msgEmployeeNotFound = "сотрудник не найден"

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

// Handle GET /api/v1/employees/{employeeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID := mux.Vars(r)["employeeId"]

	employee, err := h.service.GetByID(r.Context(), employeeID)
	if err != nil {
		if errors.Is(err, employees.ErrEmployeeNotFound) {
			h.logger.Warn("GET /employees/{id} - Employee not found: employee_id=%s", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)
			return
		}
		h.logger.Error("GET /employees/{id} - Failed to get employee: employee_id=%s, error=%v", employeeID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, employee)
}
