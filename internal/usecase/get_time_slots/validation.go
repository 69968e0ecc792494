package get_time_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}
	if req.EmployeeID != nil && *req.EmployeeID == "" {
		return fmt.Errorf("%w: employeeId must not be empty", ErrInvalidInput)
	}
	return nil
}

// validateRange ограничивает длину диапазона. Перевернутый диапазон допустим
// и дает пустой результат.
func validateRange(start, end time.Time) error {
	if end.Before(start) {
		return nil
	}
	// календарные дни, переход на летнее время не сдвигает границу
	if start.AddDate(0, 0, domain.MaxRangeDays).Before(end) {
		return fmt.Errorf("%w: at most %d days", ErrRangeTooLarge, domain.MaxRangeDays)
	}
	return nil
}

// dateIn переносит календарную дату в часовой пояс календаря (полночь)
func dateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
