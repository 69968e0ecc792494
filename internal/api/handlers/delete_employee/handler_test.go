package delete_employee

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StaffScheduler/internal/service/employees"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	deleted []string
	err     error
}

func (f *fakeService) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func del(svc *fakeService) *httptest.ResponseRecorder {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/v1/employees/e1", nil), map[string]string{"employeeId": "e1"})
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	assert.Equal(t, http.StatusNoContent, del(svc).Code)
	assert.Equal(t, []string{"e1"}, svc.deleted)

	assert.Equal(t, http.StatusNotFound, del(&fakeService{err: employees.ErrEmployeeNotFound}).Code)
	assert.Equal(t, http.StatusInternalServerError, del(&fakeService{err: employees.ErrInternal}).Code)
}
