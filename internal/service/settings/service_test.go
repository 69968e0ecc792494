package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/settings/models"
	"github.com/m04kA/SMC-StaffScheduler/pkg/ptr"
	"github.com/m04kA/SMC-StaffScheduler/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	current *domain.CalendarSettings
	getErr  error
	saved   int
}

func (r *fakeRepo) Get(context.Context) (*domain.CalendarSettings, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	copied := *r.current
	return &copied, nil
}

func (r *fakeRepo) Upsert(_ context.Context, s *domain.CalendarSettings) (*domain.CalendarSettings, error) {
	copied := *s
	r.current = &copied
	r.saved++
	return s, nil
}

func TestGet(t *testing.T) {
	svc := NewService(&fakeRepo{current: domain.DefaultCalendarSettings()}, nopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 60, resp.SlotDurationMinutes)
	assert.Equal(t, types.TimeString("09:00"), resp.WorkStartTime)
}

func TestGet_RepositoryFailure(t *testing.T) {
	svc := NewService(&fakeRepo{getErr: errors.New("down")}, nopLogger{})

	_, err := svc.Get(context.Background())
	require.ErrorIs(t, err, ErrInternal)
}

func TestUpdate_Partial(t *testing.T) {
	repo := &fakeRepo{current: domain.DefaultCalendarSettings()}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{SlotDurationMinutes: ptr.Ptr(30)})
	require.NoError(t, err)

	assert.Equal(t, 30, resp.SlotDurationMinutes)
	assert.Equal(t, types.TimeString("17:00"), resp.WorkEndTime)
	assert.Equal(t, 30, repo.current.SlotDurationMinutes)
}

func TestUpdate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.UpdateSettingsRequest
	}{
		{name: "slot too short", req: models.UpdateSettingsRequest{SlotDurationMinutes: ptr.Ptr(4)}},
		{name: "slot too long", req: models.UpdateSettingsRequest{SlotDurationMinutes: ptr.Ptr(481)}},
		{name: "inverted window", req: models.UpdateSettingsRequest{WorkStartTime: ptr.Ptr(types.TimeString("18:00"))}},
		{name: "malformed time", req: models.UpdateSettingsRequest{WorkEndTime: ptr.Ptr(types.TimeString("25:00"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{current: domain.DefaultCalendarSettings()}

			_, err := NewService(repo, nopLogger{}).Update(context.Background(), &tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, repo.saved)
		})
	}
}
