package delete_employee

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

// Handle DELETE /api/v1/employees/{employeeId}
// Назначения сотрудника удаляются каскадно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID := mux.Vars(r)["employeeId"]

	if err := h.service.Delete(r.Context(), employeeID); err != nil {
		if errors.Is(err, employees.ErrEmployeeNotFound) {
			h.logger.Warn("DELETE /employees/{id} - Employee not found: employee_id=%s", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)
			return
		}
		h.logger.Error("DELETE /employees/{id} - Failed to delete employee: employee_id=%s, error=%v", employeeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /employees/{id} - Employee deleted: employee_id=%s", employeeID)
	handlers.RespondNoContent(w)
}
