package domain

import "time"

// TimeSlot интервал [Start, End) рабочего окна сотрудника.
// Не сохраняется, создается заново на каждый запрос.
type TimeSlot struct {
	Start        time.Time
	End          time.Time
	Available    bool
	EmployeeID   string
	AssignmentID *string // ID занимающего назначения, только для занятых слотов
}

// IsOccupied возвращает true, если слот занят назначением
func (s *TimeSlot) IsOccupied() bool {
	return !s.Available
}
