package domain

import "time"

// AssignmentStatus статус назначения
type AssignmentStatus string

const (
	StatusScheduled AssignmentStatus = "scheduled"
	StatusCompleted AssignmentStatus = "completed"
	StatusCancelled AssignmentStatus = "cancelled"
)

// IsValid проверяет, что статус известен
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Assignment назначение работы сотруднику (запись клиента)
type Assignment struct {
	ID          string
	EmployeeID  string
	Title       string
	ClientName  string
	ClientEmail string
	ClientPhone *string
	Notes       *string
	StartTime   time.Time
	EndTime     time.Time
	Status      AssignmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsScheduled возвращает true, если назначение занимает время сотрудника.
// Завершенные и отмененные назначения слоты не блокируют.
func (a *Assignment) IsScheduled() bool {
	return a.Status == StatusScheduled
}

// CanTransitionTo проверяет допустимость перехода scheduled -> completed | cancelled
func (a *Assignment) CanTransitionTo(next AssignmentStatus) bool {
	return a.Status == StatusScheduled && (next == StatusCompleted || next == StatusCancelled)
}

// CanBeRescheduled возвращает true, если время назначения можно изменить
func (a *Assignment) CanBeRescheduled() bool {
	return a.Status == StatusScheduled
}

// AssignmentsFilter фильтр для выборки назначений
type AssignmentsFilter struct {
	EmployeeID  *string           // Фильтр по сотруднику (опционально)
	Status      *AssignmentStatus // Фильтр по статусу (опционально)
	StartsFrom  *time.Time        // start_time >= StartsFrom (опционально)
	StartsUntil *time.Time        // start_time < StartsUntil (опционально)
}
