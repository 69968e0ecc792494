package list_assignments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffScheduler/internal/service/assignments"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/assignments/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	req *models.ListAssignmentsRequest
	err error
}

func (f *fakeService) List(_ context.Context, req *models.ListAssignmentsRequest) (*models.AssignmentListResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AssignmentListResponse{Assignments: []models.AssignmentResponse{}}, nil
}

func get(svc *fakeService, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, time.UTC, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/assignments"+query, nil))
	return rec
}

func TestHandle_Filters(t *testing.T) {
	svc := &fakeService{}
	rec := get(svc, "?employeeId=e1&status=scheduled&startDate=2025-03-10&endDate=2025-03-12")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"assignments":[]}`, rec.Body.String())

	require.NotNil(t, svc.req.EmployeeID)
	assert.Equal(t, "e1", *svc.req.EmployeeID)
	assert.Equal(t, "scheduled", *svc.req.Status)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), *svc.req.StartsFrom)
	// endDate включается целиком
	assert.Equal(t, time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), *svc.req.StartsTo)
}

func TestHandle_NoFilters(t *testing.T) {
	svc := &fakeService{}
	require.Equal(t, http.StatusOK, get(svc, "").Code)
	assert.Nil(t, svc.req.EmployeeID)
	assert.Nil(t, svc.req.StartsFrom)
	assert.Nil(t, svc.req.StartsTo)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, get(&fakeService{}, "?startDate=yesterday").Code)
	assert.Equal(t, http.StatusBadRequest, get(&fakeService{err: assignments.ErrInvalidInput}, "?status=paused").Code)
	assert.Equal(t, http.StatusInternalServerError, get(&fakeService{err: assignments.ErrInternal}, "").Code)
}
