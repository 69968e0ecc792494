package update_assignment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-StaffScheduler/internal/infra/storage/assignment"
	employeeRepo "github.com/m04kA/SMC-StaffScheduler/internal/infra/storage/employee"
	"github.com/m04kA/SMC-StaffScheduler/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type conflictCounter struct{ n int }

func (c *conflictCounter) IncAssignmentConflict(string) { c.n++ }

type store struct {
	employees   map[string]*domain.Employee
	assignments map[string]*domain.Assignment
	locked      []string
}

func (s *store) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

func (s *store) LockByID(_ context.Context, id string) (*domain.Employee, error) {
	e, ok := s.employees[id]
	if !ok {
		return nil, employeeRepo.ErrEmployeeNotFound
	}
	s.locked = append(s.locked, id)
	return e, nil
}

func (s *store) GetByID(_ context.Context, id string) (*domain.Assignment, error) {
	a, ok := s.assignments[id]
	if !ok {
		return nil, assignmentRepo.ErrAssignmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (s *store) List(_ context.Context, filter domain.AssignmentsFilter) ([]*domain.Assignment, error) {
	out := make([]*domain.Assignment, 0)
	for _, a := range s.assignments {
		if filter.EmployeeID != nil && a.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *store) Update(_ context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	stored := *a
	s.assignments[a.ID] = &stored
	return a, nil
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
}

func newStore() *store {
	return &store{
		employees: map[string]*domain.Employee{"e1": {ID: "e1"}, "e2": {ID: "e2"}},
		assignments: map[string]*domain.Assignment{
			"a1": {ID: "a1", EmployeeID: "e1", Title: "Cut", StartTime: at(9, 0), EndTime: at(10, 0), Status: domain.StatusScheduled},
			"a2": {ID: "a2", EmployeeID: "e1", Title: "Color", StartTime: at(11, 0), EndTime: at(12, 0), Status: domain.StatusScheduled},
			"a3": {ID: "a3", EmployeeID: "e1", Title: "Old", StartTime: at(13, 0), EndTime: at(14, 0), Status: domain.StatusCompleted},
		},
	}
}

func newUseCase(s *store, rec ConflictRecorder) *UseCase {
	return NewUseCase(s, s, s, rec, nopLogger{})
}

func TestExecute_RescheduleOverlappingItself(t *testing.T) {
	s := newStore()

	// сдвиг на 30 минут пересекается только с самим собой
	resp, err := newUseCase(s, nil).Execute(context.Background(), &Request{
		ID:        "a1",
		StartTime: ptr.Ptr(at(9, 30)),
		EndTime:   ptr.Ptr(at(10, 30)),
	})
	require.NoError(t, err)
	assert.Equal(t, at(9, 30), resp.Assignment.StartTime)
	assert.Equal(t, at(9, 30), s.assignments["a1"].StartTime)
	assert.Equal(t, []string{"e1"}, s.locked)
}

func TestExecute_RescheduleConflict(t *testing.T) {
	s := newStore()
	rec := &conflictCounter{}

	_, err := newUseCase(s, rec).Execute(context.Background(), &Request{
		ID:        "a1",
		StartTime: ptr.Ptr(at(10, 30)),
		EndTime:   ptr.Ptr(at(11, 30)),
	})
	require.ErrorIs(t, err, ErrSlotOccupied)
	assert.Equal(t, 1, rec.n)
	assert.Equal(t, at(9, 0), s.assignments["a1"].StartTime)
}

func TestExecute_ReassignToOtherEmployee(t *testing.T) {
	s := newStore()

	resp, err := newUseCase(s, nil).Execute(context.Background(), &Request{ID: "a2", EmployeeID: ptr.Ptr("e2")})
	require.NoError(t, err)
	assert.Equal(t, "e2", resp.Assignment.EmployeeID)

	_, err = newUseCase(s, nil).Execute(context.Background(), &Request{ID: "a1", EmployeeID: ptr.Ptr("ghost")})
	require.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestExecute_CompletedCannotBeRescheduled(t *testing.T) {
	s := newStore()

	_, err := newUseCase(s, nil).Execute(context.Background(), &Request{ID: "a3", StartTime: ptr.Ptr(at(15, 0)), EndTime: ptr.Ptr(at(16, 0))})
	require.ErrorIs(t, err, ErrNotReschedulable)

	// изменение описания без переноса допустимо
	resp, err := newUseCase(s, nil).Execute(context.Background(), &Request{ID: "a3", Notes: ptr.Ptr("paid")})
	require.NoError(t, err)
	assert.Equal(t, "paid", *resp.Assignment.Notes)
	assert.Empty(t, s.locked)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "missing id", req: Request{ID: " "}, wantErr: ErrInvalidInput},
		{name: "unknown id", req: Request{ID: "nope"}, wantErr: ErrAssignmentNotFound},
		{name: "inverted interval", req: Request{ID: "a1", EndTime: ptr.Ptr(at(8, 0))}, wantErr: ErrInvalidInput},
		{name: "no title or client", req: Request{ID: "a1", Title: ptr.Ptr("")}, wantErr: ErrInvalidInput},
		{name: "bad email", req: Request{ID: "a1", ClientEmail: ptr.Ptr("x@")}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newUseCase(newStore(), nil).Execute(context.Background(), &tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
