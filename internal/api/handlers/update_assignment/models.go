package update_assignment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/api/handlers"
	updateAssignment "github.com/m04kA/SMC-StaffScheduler/internal/usecase/update_assignment"
)

// UpdateAssignmentRequest HTTP модель запроса
// Все поля опциональны - обновляются только переданные значения
type UpdateAssignmentRequest struct {
	EmployeeID  *string `json:"employeeId,omitempty"`
	Title       *string `json:"title,omitempty"`
	ClientName  *string `json:"clientName,omitempty"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	StartTime   *string `json:"startTime,omitempty"` // RFC 3339
	EndTime     *string `json:"endTime,omitempty"`   // RFC 3339
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAssignmentRequest) ToUseCaseRequest(id string) (*updateAssignment.Request, error) {
	start, err := parseOptional(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	end, err := parseOptional(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	return &updateAssignment.Request{
		ID:          id,
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

func parseOptional(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := handlers.ParseTimestamp(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
