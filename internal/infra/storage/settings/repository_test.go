package settings

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	"github.com/m04kA/SMC-StaffScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffScheduler/pkg/txmanager"
)

const (
	selectSettings = `^SELECT work_start_time, work_end_time, slot_duration_minutes, updated_at FROM calendar_settings WHERE id = \$1$`
	seedSettings   = `^INSERT INTO calendar_settings \(id,work_start_time,work_end_time,slot_duration_minutes\) VALUES \(\$1,\$2,\$3,\$4\) ON CONFLICT \(id\) DO NOTHING$`
)

var settingsColumns = []string{"work_start_time", "work_end_time", "slot_duration_minutes", "updated_at"}

func newRepository(t *testing.T) (*Repository, *txmanager.TransactionManager, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped, nil), txmanager.NewTransactionManager(wrapped), mock
}

func TestGet_ExistingRow(t *testing.T) {
	repo, _, mock := newRepository(t)
	updated := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(selectSettings).WithArgs(1).
		WillReturnRows(sqlmock.NewRows(settingsColumns).AddRow("08:00:00", "17:30:00", 30, updated))

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.CalendarSettings{
		WorkStartTime:       "08:00",
		WorkEndTime:         "17:30",
		SlotDurationMinutes: 30,
		UpdatedAt:           updated,
	}, got)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_SeedsDefaultsOutsideTransaction(t *testing.T) {
	repo, _, mock := newRepository(t)
	defaults := domain.DefaultCalendarSettings()
	updated := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(selectSettings).WithArgs(1).WillReturnRows(sqlmock.NewRows(settingsColumns))
	mock.ExpectExec(seedSettings).
		WithArgs(1, defaults.WorkStartTime, defaults.WorkEndTime, defaults.SlotDurationMinutes).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(selectSettings).WithArgs(1).
		WillReturnRows(sqlmock.NewRows(settingsColumns).
			AddRow(defaults.WorkStartTime.String(), defaults.WorkEndTime.String(), defaults.SlotDurationMinutes, updated))

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, defaults.SlotDurationMinutes, got.SlotDurationMinutes)
	assert.Equal(t, updated, got.UpdatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_InsideTransactionReturnsDefaultsWithoutWrite(t *testing.T) {
	repo, tx, mock := newRepository(t)

	// Любой ExecContext здесь провалит тест: ожидание для него не задано
	mock.ExpectBegin()
	mock.ExpectQuery(selectSettings).WithArgs(1).WillReturnRows(sqlmock.NewRows(settingsColumns))
	mock.ExpectCommit()

	var got *domain.CalendarSettings
	err := tx.DoReadOnly(context.Background(), func(ctx context.Context) error {
		var err error
		got, err = repo.Get(ctx)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCalendarSettings(), got)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_SeedFailure(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectQuery(selectSettings).WithArgs(1).WillReturnRows(sqlmock.NewRows(settingsColumns))
	mock.ExpectExec(seedSettings).WillReturnError(assert.AnError)

	_, err := repo.Get(context.Background())
	require.ErrorIs(t, err, ErrExecQuery)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert(t *testing.T) {
	repo, _, mock := newRepository(t)
	updated := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`^INSERT INTO calendar_settings .* ON CONFLICT \(id\) DO UPDATE SET .* RETURNING updated_at$`).
		WithArgs(1, "10:00", "16:00", 45).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updated))

	got, err := repo.Upsert(context.Background(), &domain.CalendarSettings{
		WorkStartTime:       "10:00",
		WorkEndTime:         "16:00",
		SlotDurationMinutes: 45,
	})
	require.NoError(t, err)
	assert.Equal(t, updated, got.UpdatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}
