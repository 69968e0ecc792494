package models

import (
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// Request модели

// ListAssignmentsRequest фильтр списка назначений
type ListAssignmentsRequest struct {
	EmployeeID *string
	Status     *string
	StartsFrom *time.Time // включительно
	StartsTo   *time.Time // исключительно
}

// UpdateStatusRequest запрос на смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// AssignmentResponse ответ с данными назначения
type AssignmentResponse struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Title       string    `json:"title"`
	ClientName  string    `json:"clientName"`
	ClientEmail string    `json:"clientEmail"`
	ClientPhone *string   `json:"clientPhone,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AssignmentListResponse список назначений
type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
}

// FromDomain конвертирует доменную модель в ответ.
// Время переводится в часовой пояс календаря.
func FromDomain(a *domain.Assignment, loc *time.Location) *AssignmentResponse {
	return &AssignmentResponse{
		ID:          a.ID,
		EmployeeID:  a.EmployeeID,
		Title:       a.Title,
		ClientName:  a.ClientName,
		ClientEmail: a.ClientEmail,
		ClientPhone: a.ClientPhone,
		Notes:       a.Notes,
		StartTime:   a.StartTime.In(loc),
		EndTime:     a.EndTime.In(loc),
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt.In(loc),
		UpdatedAt:   a.UpdatedAt.In(loc),
	}
}

// FromDomainList конвертирует список назначений
func FromDomainList(list []*domain.Assignment, loc *time.Location) *AssignmentListResponse {
	resp := &AssignmentListResponse{Assignments: make([]AssignmentResponse, 0, len(list))}
	for _, a := range list {
		resp.Assignments = append(resp.Assignments, *FromDomain(a, loc))
	}
	return resp
}
