package create_assignment

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// normalizeRequest обрезает пробелы в текстовых полях
func normalizeRequest(req *Request) {
	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.Title = strings.TrimSpace(req.Title)
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.ClientEmail = strings.TrimSpace(req.ClientEmail)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.EmployeeID == "" {
		return fmt.Errorf("%w: employeeId is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.StartTime.Before(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if req.Title == "" && req.ClientName == "" {
		return fmt.Errorf("%w: title or clientName is required", ErrInvalidInput)
	}

	if len(req.Title) > domain.MaxTitleLength || len(req.ClientName) > domain.MaxNameLength {
		return fmt.Errorf("%w: title and clientName must be at most %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if req.ClientEmail != "" {
		if _, err := mail.ParseAddress(req.ClientEmail); err != nil {
			return fmt.Errorf("%w: invalid clientEmail %q", ErrInvalidInput, req.ClientEmail)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateNotInPast проверяет, что назначение не начинается в прошлом
func validateNotInPast(start, now time.Time) error {
	if start.Before(now) {
		return fmt.Errorf("%w: %s", ErrStartInPast, start.Format(time.RFC3339))
	}
	return nil
}
