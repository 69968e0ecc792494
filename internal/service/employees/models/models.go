package models

import (
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	"github.com/m04kA/SMC-StaffScheduler/pkg/types"
)

// Request модели

// WorkHours рабочее окно в формате HH:MM
type WorkHours struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// CreateEmployeeRequest запрос на создание сотрудника
type CreateEmployeeRequest struct {
	Name      string     `json:"name"`
	Email     *string    `json:"email,omitempty"`
	Position  *string    `json:"position,omitempty"`
	WorkHours *WorkHours `json:"workHours,omitempty"` // nil = рабочие часы по умолчанию
}

// UpdateEmployeeRequest запрос на обновление сотрудника
// Все поля опциональны - обновляются только переданные значения
type UpdateEmployeeRequest struct {
	Name      *string    `json:"name,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Position  *string    `json:"position,omitempty"`
	WorkHours *WorkHours `json:"workHours,omitempty"`
}

// Response модели

// EmployeeResponse ответ с данными сотрудника
type EmployeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Position  *string   `json:"position,omitempty"`
	WorkHours WorkHours `json:"workHours"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmployeeListResponse список сотрудников
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// FromDomain конвертирует доменную модель в ответ
func FromDomain(e *domain.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:       e.ID,
		Name:     e.Name,
		Email:    e.Email,
		Position: e.Position,
		WorkHours: WorkHours{
			Start: e.WorkHours.Start,
			End:   e.WorkHours.End,
		},
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
