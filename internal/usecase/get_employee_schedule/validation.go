package get_employee_schedule

import (
	"fmt"
	"strings"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.EmployeeID) == "" {
		return fmt.Errorf("%w: employeeId is required", ErrInvalidInput)
	}
	return nil
}

// resolveRange вычисляет границы [from, to] запроса.
// Дата начала берется с полуночи, дата конца - до конца дня.
// Без дат используется [now, now + defaultDays].
func resolveRange(req *Request, now time.Time, defaultDays int, loc *time.Location) (time.Time, time.Time, error) {
	from := now.In(loc)
	if req.StartDate != nil {
		from = dateIn(*req.StartDate, loc)
	}

	to := from.AddDate(0, 0, defaultDays)
	if req.EndDate != nil {
		to = dateIn(*req.EndDate, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	return from, to, nil
}

func dateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
