package get_employee_schedule

import (
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// Request модель запроса расписания сотрудника
type Request struct {
	EmployeeID string
	StartDate  *time.Time // Первый день (опционально, по умолчанию - сейчас)
	EndDate    *time.Time // Последний день включительно (опционально)
}

// Response расписание сотрудника
type Response struct {
	Employee    *domain.Employee
	From        time.Time // Начало диапазона (включительно)
	To          time.Time // Конец диапазона (включительно)
	Assignments []*domain.Assignment
}
