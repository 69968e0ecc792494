package availability

import (
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// ComputeTimeSlots генерирует слоты для всех рабочих дней диапазона [startDate, endDate]
// (включительно, с точностью до дня). Суббота и воскресенье пропускаются.
//
// Порядок результата: по дням по возрастанию, внутри дня - в порядке employees.
// Если employeeID задан, учитывается только этот сотрудник.
// Если startDate позже endDate, результат пустой.
//
// Входные слайсы не изменяются.
func ComputeTimeSlots(
	employees []*domain.Employee,
	assignments []*domain.Assignment,
	settings *domain.CalendarSettings,
	startDate, endDate time.Time,
	employeeID *string,
) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)

	inScope := filterEmployees(employees, employeeID)
	if len(inScope) == 0 {
		return slots
	}

	for _, day := range BusinessDays(startDate, endDate) {
		for _, employee := range inScope {
			slots = append(slots, GenerateDaySlots(day, employee, settings, assignments)...)
		}
	}

	return slots
}

// BusinessDays возвращает полночь каждого дня диапазона [startDate, endDate],
// кроме субботы и воскресенья. Часовой пояс берется из startDate.
func BusinessDays(startDate, endDate time.Time) []time.Time {
	days := make([]time.Time, 0)

	loc := startDate.Location()
	current := startOfDay(startDate)
	last := startOfDay(endDate.In(loc))

	for !current.After(last) {
		if !IsWeekend(current) {
			days = append(days, current)
		}
		// AddDate корректно проходит переходы на летнее время
		current = current.AddDate(0, 0, 1)
	}

	return days
}

// IsWeekend возвращает true для субботы и воскресенья
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func filterEmployees(employees []*domain.Employee, employeeID *string) []*domain.Employee {
	result := make([]*domain.Employee, 0, len(employees))
	for _, e := range employees {
		if e == nil {
			continue
		}
		if employeeID != nil && e.ID != *employeeID {
			continue
		}
		result = append(result, e)
	}
	return result
}
