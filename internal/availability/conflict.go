package availability

import (
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// HasConflict проверяет, пересекается ли предлагаемый интервал [start, end)
// с любым назначением сотрудника в статусе scheduled (за все даты).
func HasConflict(employeeID string, start, end time.Time, assignments []*domain.Assignment) bool {
	return FindConflict(employeeID, start, end, assignments) != nil
}

// FindConflict возвращает первое назначение, блокирующее интервал, или nil
func FindConflict(employeeID string, start, end time.Time, assignments []*domain.Assignment) *domain.Assignment {
	return FindConflictExcluding(employeeID, start, end, assignments, "")
}

// FindConflictExcluding как FindConflict, но пропускает назначение excludeID
// (переносимое назначение не конфликтует само с собой)
func FindConflictExcluding(
	employeeID string,
	start, end time.Time,
	assignments []*domain.Assignment,
	excludeID string,
) *domain.Assignment {
	proposed := Interval{Start: start, End: end}
	for _, a := range assignments {
		if a == nil || a.EmployeeID != employeeID || !a.IsScheduled() {
			continue
		}
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		if proposed.Overlaps(Interval{Start: a.StartTime, End: a.EndTime}) {
			return a
		}
	}
	return nil
}
