package get_employee_schedule

import (
	"time"

	assignmentModels "github.com/m04kA/SMC-StaffScheduler/internal/service/assignments/models"
	employeeModels "github.com/m04kA/SMC-StaffScheduler/internal/service/employees/models"
	getSchedule "github.com/m04kA/SMC-StaffScheduler/internal/usecase/get_employee_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Employee    *employeeModels.EmployeeResponse      `json:"employee"`
	From        string                                `json:"from"`
	To          string                                `json:"to"`
	Assignments []assignmentModels.AssignmentResponse `json:"assignments"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response, loc *time.Location) *ScheduleResponse {
	return &ScheduleResponse{
		Employee:    employeeModels.FromDomain(resp.Employee),
		From:        resp.From.In(loc).Format(time.RFC3339),
		To:          resp.To.In(loc).Format(time.RFC3339),
		Assignments: assignmentModels.FromDomainList(resp.Assignments, loc).Assignments,
	}
}
