package update_employee

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
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
	id  string
	req *models.UpdateEmployeeRequest
	err error
}

func (f *fakeService) Update(_ context.Context, id string, req *models.UpdateEmployeeRequest) (*models.EmployeeResponse, error) {
	f.id, f.req = id, req
	if f.err != nil {
		return nil, f.err
	}
	return &models.EmployeeResponse{ID: id, Name: "Anna"}, nil
}

func put(svc *fakeService, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/employees/e1", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"employeeId": "e1"})
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{}
	rec := put(svc, `{"position":"Stylist"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "e1", svc.id)
	require.NotNil(t, svc.req.Position)
	assert.Equal(t, "Stylist", *svc.req.Position)
	assert.Nil(t, svc.req.Name)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		svcErr error
		status int
	}{
		{name: "broken json", body: `[`, status: http.StatusBadRequest},
		{name: "not found", body: `{}`, svcErr: employees.ErrEmployeeNotFound, status: http.StatusNotFound},
		{name: "invalid input", body: `{}`, svcErr: employees.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "duplicate email", body: `{}`, svcErr: employees.ErrDuplicateEmail, status: http.StatusConflict},
		{name: "internal", body: `{}`, svcErr: employees.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := put(&fakeService{err: tt.svcErr}, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
