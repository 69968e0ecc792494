package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	"github.com/m04kA/SMC-StaffScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffScheduler/pkg/psqlbuilder"
)

const (
	table = "calendar_settings"

	// singletonID настройки хранятся одной строкой
	singletonID = 1
)

// Repository репозиторий глобальных настроек календаря
type Repository struct {
	db       DBExecutor
	defaults domain.CalendarSettings
}

// NewRepository создает репозиторий настроек.
// defaults записываются в БД при первом чтении, если строки еще нет.
func NewRepository(db DBExecutor, defaults *domain.CalendarSettings) *Repository {
	if defaults == nil {
		defaults = domain.DefaultCalendarSettings()
	}
	return &Repository{db: db, defaults: *defaults}
}

// Get возвращает настройки календаря, создавая строку по умолчанию при ее отсутствии.
// В транзакции отсутствующая строка заменяется значениями по умолчанию без записи.
func (r *Repository) Get(ctx context.Context) (*domain.CalendarSettings, error) {
	settings, err := r.selectOne(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// Внутри транзакции (в том числе read-only) запись не выполняется
	if dbmetrics.IsInTransaction(ctx) {
		defaults := r.defaults
		return &defaults, nil
	}

	if err := r.seed(ctx); err != nil {
		return nil, err
	}

	settings, err = r.selectOne(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - reread after seed: %v", ErrScanRow, err)
	}
	return settings, nil
}

// Upsert сохраняет настройки календаря
func (r *Repository) Upsert(ctx context.Context, settings *domain.CalendarSettings) (*domain.CalendarSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "work_start_time", "work_end_time", "slot_duration_minutes").
		Values(singletonID, settings.WorkStartTime, settings.WorkEndTime, settings.SlotDurationMinutes).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			work_start_time = EXCLUDED.work_start_time,
			work_end_time = EXCLUDED.work_end_time,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&settings.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return settings, nil
}

// selectOne возвращает sql.ErrNoRows без обертки, если строки нет
func (r *Repository) selectOne(ctx context.Context) (*domain.CalendarSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("work_start_time", "work_end_time", "slot_duration_minutes", "updated_at").
		From(table).
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.CalendarSettings
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.WorkStartTime,
		&settings.WorkEndTime,
		&settings.SlotDurationMinutes,
		&settings.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	return &settings, nil
}

func (r *Repository) seed(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "work_start_time", "work_end_time", "slot_duration_minutes").
		Values(singletonID, r.defaults.WorkStartTime, r.defaults.WorkEndTime, r.defaults.SlotDurationMinutes).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: seed - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: seed - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
