package update_assignment

import (
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// Request модель запроса на изменение назначения
// Все поля кроме ID опциональны - обновляются только переданные значения
type Request struct {
	ID          string
	EmployeeID  *string
	Title       *string
	ClientName  *string
	ClientEmail *string
	ClientPhone *string
	Notes       *string
	StartTime   *time.Time
	EndTime     *time.Time
}

// Response модель ответа с обновленным назначением
type Response struct {
	Assignment *domain.Assignment
}
