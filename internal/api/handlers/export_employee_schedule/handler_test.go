package export_employee_schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	getSchedule "github.com/m04kA/SMC-StaffScheduler/internal/usecase/get_employee_schedule"
	"github.com/m04kA/SMC-StaffScheduler/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *getSchedule.Response
	err  error
}

func (f *fakeUseCase) Execute(context.Context, *getSchedule.Request) (*getSchedule.Response, error) {
	return f.resp, f.err
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/employees/{employeeId}/schedule.ics", h.Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func schedule() *getSchedule.Response {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &getSchedule.Response{
		Employee: &domain.Employee{ID: "e1", Name: "Anna"},
		Assignments: []*domain.Assignment{
			{
				ID:          "a1",
				EmployeeID:  "e1",
				Title:       "Haircut",
				ClientName:  "Bob",
				ClientEmail: "bob@example.com",
				ClientPhone: ptr.Ptr("+100"),
				StartTime:   start,
				EndTime:     start.Add(time.Hour),
				Status:      domain.StatusScheduled,
			},
			{
				ID:         "a2",
				EmployeeID: "e1",
				ClientName: "Eve",
				StartTime:  start.Add(2 * time.Hour),
				EndTime:    start.Add(3 * time.Hour),
				Status:     domain.StatusCancelled,
			},
		},
	}
}

func TestHandle_ExportsEvents(t *testing.T) {
	h := NewHandler(&fakeUseCase{resp: schedule()}, time.UTC, nopLogger{})
	h.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	rec := serve(h, "/api/v1/employees/e1/schedule.ics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/calendar")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "schedule-e1.ics")

	cal, err := ical.NewDecoder(rec.Body).Decode()
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	assert.Equal(t, "a1@staff-scheduler", events[0].Props.Get(ical.PropUID).Value)
	assert.Equal(t, "Haircut - Bob", events[0].Props.Get(ical.PropSummary).Value)
	assert.Equal(t, "CONFIRMED", events[0].Props.Get(ical.PropStatus).Value)

	start, err := events[0].DateTimeStart(time.UTC)
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)))

	assert.Equal(t, "Eve", events[1].Props.Get(ical.PropSummary).Value)
	assert.Equal(t, "CANCELLED", events[1].Props.Get(ical.PropStatus).Value)
}

func TestHandle_EmptySchedule(t *testing.T) {
	resp := &getSchedule.Response{Employee: &domain.Employee{ID: "e1", Name: "Anna"}}
	rec := serve(NewHandler(&fakeUseCase{resp: resp}, time.UTC, nopLogger{}), "/api/v1/employees/e1/schedule.ics")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		ucErr  error
		status int
	}{
		{name: "malformed date", query: "?endDate=tomorrow", status: http.StatusBadRequest},
		{name: "not found", ucErr: getSchedule.ErrEmployeeNotFound, status: http.StatusNotFound},
		{name: "internal", ucErr: getSchedule.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeUseCase{err: tt.ucErr}, time.UTC, nopLogger{}), "/api/v1/employees/e1/schedule.ics"+tt.query)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestDescribe(t *testing.T) {
	a := schedule().Assignments[0]
	a.Notes = ptr.Ptr("bring towel")

	assert.Equal(t, "Employee: Anna\nEmail: bob@example.com\nPhone: +100\nbring towel", describe(a, &domain.Employee{Name: "Anna"}))
	assert.Empty(t, describe(&domain.Assignment{}, nil))
}
