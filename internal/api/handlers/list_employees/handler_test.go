package list_employees

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffScheduler/internal/service/employees"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/employees/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	resp *models.EmployeeListResponse
	err  error
}

func (f *fakeService) List(context.Context) (*models.EmployeeListResponse, error) {
	return f.resp, f.err
}

func TestHandle(t *testing.T) {
	svc := &fakeService{resp: &models.EmployeeListResponse{Employees: []models.EmployeeResponse{{ID: "e1"}, {ID: "e2"}}}}
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.EmployeeListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body.Employees, 2)

	rec = httptest.NewRecorder()
	NewHandler(&fakeService{err: employees.ErrInternal}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
