package employee

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

const table = "employees"

var columns = []string{
	"id",
	"name",
	"email",
	"position",
	"work_hours_start",
	"work_hours_end",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сотрудниками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет нового сотрудника. ID генерируется вызывающей стороной.
func (r *Repository) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "name", "email", "position", "work_hours_start", "work_hours_end").
		Values(
			employee.ID,
			employee.Name,
			employee.Email,
			employee.Position,
			employee.WorkHours.Start,
			employee.WorkHours.End,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&employee.CreatedAt, &employee.UpdatedAt)
	if pgerrors.IsUniqueViolation(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return employee, nil
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	return r.getOne(ctx, "GetByID", id, false)
}

// LockByID получает сотрудника и блокирует его строку до конца транзакции.
// Вне транзакции работает как GetByID.
//
// Используется для сериализации создания назначений одного сотрудника:
// проверка конфликтов и вставка выполняются под этой блокировкой.
func (r *Repository) LockByID(ctx context.Context, id string) (*domain.Employee, error) {
	return r.getOne(ctx, "LockByID", id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getOne(ctx context.Context, op, id string, forUpdate bool) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	employee, err := scanEmployee(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan employee: %v", ErrScanRow, op, err)
	}

	return employee, nil
}

// List возвращает всех сотрудников, отсортированных по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan employee: %v", ErrScanRow, err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return employees, nil
}

// Update обновляет данные сотрудника
func (r *Repository) Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", employee.Name).
		Set("email", employee.Email).
		Set("position", employee.Position).
		Set("work_hours_start", employee.WorkHours.Start).
		Set("work_hours_end", employee.WorkHours.End).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": employee.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&employee.CreatedAt, &employee.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if pgerrors.IsUniqueViolation(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return employee, nil
}

// Delete удаляет сотрудника. Назначения удаляются каскадно.
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
		return ErrEmployeeNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var employee domain.Employee
	var email, position sql.NullString

	err := row.Scan(
		&employee.ID,
		&employee.Name,
		&email,
		&position,
		&employee.WorkHours.Start,
		&employee.WorkHours.End,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if email.Valid {
		employee.Email = &email.String
	}
	if position.Valid {
		employee.Position = &position.String
	}

	return &employee, nil
}
