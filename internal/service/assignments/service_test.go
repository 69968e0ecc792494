package assignments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-StaffScheduler/internal/infra/storage/assignment"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/assignments/models"
	"github.com/m04kA/SMC-StaffScheduler/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type inlineTx struct{ calls int }

func (tx *inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type fakeRepo struct {
	items      map[string]*domain.Assignment
	lastFilter domain.AssignmentsFilter
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*domain.Assignment, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, assignmentRepo.ErrAssignmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeRepo) List(_ context.Context, filter domain.AssignmentsFilter) ([]*domain.Assignment, error) {
	r.lastFilter = filter
	out := make([]*domain.Assignment, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, status domain.AssignmentStatus) error {
	a, ok := r.items[id]
	if !ok {
		return assignmentRepo.ErrAssignmentNotFound
	}
	a.Status = status
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return assignmentRepo.ErrAssignmentNotFound
	}
	delete(r.items, id)
	return nil
}

func newRepo(status domain.AssignmentStatus) *fakeRepo {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &fakeRepo{items: map[string]*domain.Assignment{
		"a1": {ID: "a1", EmployeeID: "e1", StartTime: start, EndTime: start.Add(time.Hour), Status: status},
	}}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    domain.AssignmentStatus
		to      string
		wantErr error
	}{
		{from: domain.StatusScheduled, to: "completed"},
		{from: domain.StatusScheduled, to: "cancelled"},
		{from: domain.StatusScheduled, to: "scheduled", wantErr: ErrInvalidStatusTransition},
		{from: domain.StatusCancelled, to: "completed", wantErr: ErrInvalidStatusTransition},
		{from: domain.StatusCompleted, to: "cancelled", wantErr: ErrInvalidStatusTransition},
		{from: domain.StatusScheduled, to: "archived", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+tt.to, func(t *testing.T) {
			repo := newRepo(tt.from)
			svc := NewService(repo, &inlineTx{}, time.UTC, nopLogger{})

			resp, err := svc.UpdateStatus(context.Background(), "a1", &models.UpdateStatusRequest{Status: tt.to})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, repo.items["a1"].Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
			assert.Equal(t, domain.AssignmentStatus(tt.to), repo.items["a1"].Status)
		})
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(newRepo(domain.StatusScheduled), &inlineTx{}, time.UTC, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), "missing", &models.UpdateStatusRequest{Status: "cancelled"})
	require.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestGetByID_RendersInLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	svc := NewService(newRepo(domain.StatusScheduled), &inlineTx{}, loc, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, 12, resp.StartTime.Hour())
	assert.Equal(t, loc, resp.StartTime.Location())
}

func TestList_Filter(t *testing.T) {
	repo := newRepo(domain.StatusScheduled)
	svc := NewService(repo, &inlineTx{}, time.UTC, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListAssignmentsRequest{
		EmployeeID: ptr.Ptr("e1"),
		Status:     ptr.Ptr("scheduled"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Assignments, 1)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusScheduled, *repo.lastFilter.Status)
	assert.Equal(t, "e1", *repo.lastFilter.EmployeeID)

	_, err = svc.List(context.Background(), &models.ListAssignmentsRequest{Status: ptr.Ptr("unknown")})
	require.ErrorIs(t, err, ErrInvalidInput)

	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err = svc.List(context.Background(), &models.ListAssignmentsRequest{StartsFrom: &from, StartsTo: ptr.Ptr(from.Add(-time.Hour))})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := newRepo(domain.StatusScheduled)
	svc := NewService(repo, &inlineTx{}, time.UTC, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), "a1"))
	assert.Empty(t, repo.items)
	require.ErrorIs(t, svc.Delete(context.Background(), "a1"), ErrAssignmentNotFound)
}
