package update_assignment

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// changesSchedule возвращает true, если запрос меняет время или сотрудника
func changesSchedule(req *Request, current *domain.Assignment) bool {
	if req.EmployeeID != nil && *req.EmployeeID != current.EmployeeID {
		return true
	}
	if req.StartTime != nil && !req.StartTime.Equal(current.StartTime) {
		return true
	}
	if req.EndTime != nil && !req.EndTime.Equal(current.EndTime) {
		return true
	}
	return false
}

// apply применяет изменения к копии назначения
func apply(req *Request, current *domain.Assignment) *domain.Assignment {
	updated := *current

	if req.EmployeeID != nil {
		updated.EmployeeID = strings.TrimSpace(*req.EmployeeID)
	}
	if req.Title != nil {
		updated.Title = strings.TrimSpace(*req.Title)
	}
	if req.ClientName != nil {
		updated.ClientName = strings.TrimSpace(*req.ClientName)
	}
	if req.ClientEmail != nil {
		updated.ClientEmail = strings.TrimSpace(*req.ClientEmail)
	}
	if req.ClientPhone != nil {
		updated.ClientPhone = req.ClientPhone
	}
	if req.Notes != nil {
		updated.Notes = req.Notes
	}
	if req.StartTime != nil {
		updated.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		updated.EndTime = *req.EndTime
	}

	return &updated
}

// validateAssignment валидирует итоговое состояние назначения
func validateAssignment(a *domain.Assignment) error {
	if a.EmployeeID == "" {
		return fmt.Errorf("%w: employeeId must not be empty", ErrInvalidInput)
	}
	if !a.StartTime.Before(a.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	if a.Title == "" && a.ClientName == "" {
		return fmt.Errorf("%w: title or clientName is required", ErrInvalidInput)
	}
	if len(a.Title) > domain.MaxTitleLength || len(a.ClientName) > domain.MaxNameLength {
		return fmt.Errorf("%w: title and clientName must be at most %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}
	if a.ClientEmail != "" {
		if _, err := mail.ParseAddress(a.ClientEmail); err != nil {
			return fmt.Errorf("%w: invalid clientEmail %q", ErrInvalidInput, a.ClientEmail)
		}
	}
	if a.Notes != nil && len(*a.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}
