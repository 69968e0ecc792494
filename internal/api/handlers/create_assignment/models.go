package create_assignment

import (
	"fmt"

	"github.com/m04kA/SMC-StaffScheduler/internal/api/handlers"
	createAssignment "github.com/m04kA/SMC-StaffScheduler/internal/usecase/create_assignment"
)

// CreateAssignmentRequest HTTP модель запроса (форма записи и админка)
type CreateAssignmentRequest struct {
	EmployeeID  string  `json:"employeeId"`
	Title       string  `json:"title"`
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	StartTime   string  `json:"startTime"` // RFC 3339
	EndTime     string  `json:"endTime"`   // RFC 3339
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAssignmentRequest) ToUseCaseRequest() (*createAssignment.Request, error) {
	start, err := handlers.ParseTimestamp(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	end, err := handlers.ParseTimestamp(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	return &createAssignment.Request{
		EmployeeID:  r.EmployeeID,
		Title:       r.Title,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		ClientPhone: r.ClientPhone,
		Notes:       r.Notes,
		StartTime:   start,
		EndTime:     end,
	}, nil
}
