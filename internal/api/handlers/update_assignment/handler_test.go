package update_assignment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	updateAssignment "github.com/m04kA/SMC-StaffScheduler/internal/usecase/update_assignment"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	req *updateAssignment.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *updateAssignment.Request) (*updateAssignment.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &updateAssignment.Response{Assignment: &domain.Assignment{ID: req.ID, Status: domain.StatusScheduled}}, nil
}

func put(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/assignments/a1", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"assignmentId": "a1"})
	rec := httptest.NewRecorder()
	NewHandler(uc, time.UTC, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Reschedule(t *testing.T) {
	uc := &fakeUseCase{}
	rec := put(uc, `{"startTime":"2025-03-10T11:00:00Z","endTime":"2025-03-10T12:00:00Z"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a1", uc.req.ID)
	require.NotNil(t, uc.req.StartTime)
	assert.Equal(t, 11, uc.req.StartTime.Hour())
	assert.Nil(t, uc.req.Title)
}

func TestHandle_MetadataOnly(t *testing.T) {
	uc := &fakeUseCase{}
	rec := put(uc, `{"notes":"call first"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.req.StartTime)
	assert.Nil(t, uc.req.EndTime)
	assert.Equal(t, "call first", *uc.req.Notes)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		ucErr  error
		status int
	}{
		{name: "broken json", body: `{`, status: http.StatusBadRequest},
		{name: "bad timestamp", body: `{"endTime":"noon"}`, status: http.StatusBadRequest},
		{name: "not found", body: `{}`, ucErr: updateAssignment.ErrAssignmentNotFound, status: http.StatusNotFound},
		{name: "employee not found", body: `{}`, ucErr: updateAssignment.ErrEmployeeNotFound, status: http.StatusNotFound},
		{name: "slot occupied", body: `{}`, ucErr: updateAssignment.ErrSlotOccupied, status: http.StatusConflict},
		{name: "not reschedulable", body: `{}`, ucErr: updateAssignment.ErrNotReschedulable, status: http.StatusBadRequest},
		{name: "invalid input", body: `{}`, ucErr: updateAssignment.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", body: `{}`, ucErr: updateAssignment.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := put(&fakeUseCase{err: tt.ucErr}, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
