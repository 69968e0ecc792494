package domain

import (
	"time"

	"github.com/m04kA/SMC-StaffScheduler/pkg/types"
)

// WorkHours ежедневное рабочее окно сотрудника (локальное время без часового пояса)
type WorkHours struct {
	Start types.TimeString
	End   types.TimeString
}

// IsValid возвращает true, если оба значения корректны и начало раньше конца
func (w WorkHours) IsValid() bool {
	if w.Start.Validate() != nil || w.End.Validate() != nil {
		return false
	}
	return w.Start.IsBefore(w.End)
}

// Employee сотрудник, которому назначаются работы
type Employee struct {
	ID        string
	Name      string
	Email     *string
	Position  *string
	WorkHours WorkHours
	CreatedAt time.Time
	UpdatedAt time.Time
}
