package create_assignment

import (
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// Request модель запроса на создание назначения
type Request struct {
	EmployeeID  string
	Title       string
	ClientName  string
	ClientEmail string
	ClientPhone *string
	Notes       *string
	StartTime   time.Time
	EndTime     time.Time
}

// Response модель ответа с созданным назначением
type Response struct {
	Assignment *domain.Assignment
}
