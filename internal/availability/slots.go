package availability

import (
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// GenerateDaySlots разбивает рабочее окно сотрудника на указанную дату на слоты
// длительностью settings.SlotDurationMinutes и помечает занятые.
//
// Рабочее окно привязывается к дате в ее часовом поясе. Слоты генерируются,
// пока НАЧАЛО слота раньше конца рабочего окна, поэтому последний слот может
// выходить за конец окна, если окно не кратно длительности слота.
//
// Слот занят, если с ним пересекается хотя бы одно назначение этого сотрудника
// в статусе scheduled, начинающееся в тот же день.
func GenerateDaySlots(
	day time.Time,
	employee *domain.Employee,
	settings *domain.CalendarSettings,
	assignments []*domain.Assignment,
) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)

	if employee == nil || settings == nil || settings.SlotDurationMinutes <= 0 {
		return slots
	}

	workStart := employee.WorkHours.Start.OnDate(day)
	workEnd := employee.WorkHours.End.OnDate(day)
	step := settings.SlotDuration()

	dayAssignments := scheduledForDay(employee.ID, day, assignments)

	for current := workStart; current.Before(workEnd); current = current.Add(step) {
		slot := domain.TimeSlot{
			Start:      current,
			End:        current.Add(step),
			Available:  true,
			EmployeeID: employee.ID,
		}

		if occupied := firstOverlapping(slot.Start, slot.End, dayAssignments); occupied != nil {
			id := occupied.ID
			slot.Available = false
			slot.AssignmentID = &id
		}

		slots = append(slots, slot)
	}

	return slots
}

// scheduledForDay отбирает назначения сотрудника в статусе scheduled, начинающиеся в день day
func scheduledForDay(employeeID string, day time.Time, assignments []*domain.Assignment) []*domain.Assignment {
	result := make([]*domain.Assignment, 0)
	for _, a := range assignments {
		if a == nil || a.EmployeeID != employeeID || !a.IsScheduled() {
			continue
		}
		if !isSameDay(a.StartTime.In(day.Location()), day) {
			continue
		}
		result = append(result, a)
	}
	return result
}

// firstOverlapping возвращает первое назначение, пересекающееся с [start, end)
func firstOverlapping(start, end time.Time, assignments []*domain.Assignment) *domain.Assignment {
	for _, a := range assignments {
		if Overlaps(start, end, a.StartTime, a.EndTime) {
			return a
		}
	}
	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
