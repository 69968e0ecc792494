package assignment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	"github.com/m04kA/SMC-StaffScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffScheduler/pkg/pgerrors"
	"github.com/m04kA/SMC-StaffScheduler/pkg/psqlbuilder"
)

const table = "work_assignments"

var columns = []string{
	"id",
	"employee_id",
	"title",
	"client_name",
	"client_email",
	"client_phone",
	"notes",
	"start_time",
	"end_time",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с назначениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория назначений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое назначение.
// Проверку конфликтов выполняет вызывающая сторона в той же транзакции.
func (r *Repository) Create(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"employee_id",
			"title",
			"client_name",
			"client_email",
			"client_phone",
			"notes",
			"start_time",
			"end_time",
			"status",
		).
		Values(
			assignment.ID,
			assignment.EmployeeID,
			assignment.Title,
			assignment.ClientName,
			assignment.ClientEmail,
			assignment.ClientPhone,
			assignment.Notes,
			assignment.StartTime,
			assignment.EndTime,
			assignment.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&assignment.CreatedAt, &assignment.UpdatedAt)
	if pgerrors.IsForeignKeyViolation(err) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return assignment, nil
}

// GetByID получает назначение по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	assignment, err := scanAssignment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan assignment: %v", ErrScanRow, err)
	}

	return assignment, nil
}

// List возвращает назначения по фильтру, отсортированные по времени начала.
// Пустой фильтр возвращает все назначения.
func (r *Repository) List(ctx context.Context, filter domain.AssignmentsFilter) ([]*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("start_time ASC", "id ASC")

	if filter.EmployeeID != nil {
		builder = builder.Where(squirrel.Eq{"employee_id": *filter.EmployeeID})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.StartsFrom != nil {
		builder = builder.Where(squirrel.GtOrEq{"start_time": *filter.StartsFrom})
	}
	if filter.StartsUntil != nil {
		builder = builder.Where(squirrel.Lt{"start_time": *filter.StartsUntil})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	assignments := make([]*domain.Assignment, 0)
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan assignment: %v", ErrScanRow, err)
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return assignments, nil
}

// Update обновляет назначение целиком (включая время и статус)
func (r *Repository) Update(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("employee_id", assignment.EmployeeID).
		Set("title", assignment.Title).
		Set("client_name", assignment.ClientName).
		Set("client_email", assignment.ClientEmail).
		Set("client_phone", assignment.ClientPhone).
		Set("notes", assignment.Notes).
		Set("start_time", assignment.StartTime).
		Set("end_time", assignment.EndTime).
		Set("status", assignment.Status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": assignment.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&assignment.CreatedAt, &assignment.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssignmentNotFound
	}
	if pgerrors.IsForeignKeyViolation(err) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return assignment, nil
}

// UpdateStatus изменяет только статус назначения
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AssignmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}

// Delete удаляет назначение
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAssignment(row rowScanner) (*domain.Assignment, error) {
	var assignment domain.Assignment
	var phone, notes sql.NullString

	err := row.Scan(
		&assignment.ID,
		&assignment.EmployeeID,
		&assignment.Title,
		&assignment.ClientName,
		&assignment.ClientEmail,
		&phone,
		&notes,
		&assignment.StartTime,
		&assignment.EndTime,
		&assignment.Status,
		&assignment.CreatedAt,
		&assignment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if phone.Valid {
		assignment.ClientPhone = &phone.String
	}
	if notes.Valid {
		assignment.Notes = &notes.String
	}

	return &assignment, nil
}
