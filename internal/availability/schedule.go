package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// AssignmentsInRange возвращает назначения сотрудника (любого статуса),
// время начала которых лежит в [start, end], отсортированные по началу.
func AssignmentsInRange(employeeID string, assignments []*domain.Assignment, start, end time.Time) []*domain.Assignment {
	result := make([]*domain.Assignment, 0)
	for _, a := range assignments {
		if a == nil || a.EmployeeID != employeeID {
			continue
		}
		if a.StartTime.Before(start) || a.StartTime.After(end) {
			continue
		}
		result = append(result, a)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})

	return result
}
