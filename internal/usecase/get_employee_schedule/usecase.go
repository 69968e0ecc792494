package get_employee_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/availability"
	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	employeeRepo "github.com/m04kA/SMC-StaffScheduler/internal/infra/storage/employee"
)

// UseCase use case получения расписания сотрудника
type UseCase struct {
	employeeRepo   EmployeeRepository
	assignmentRepo AssignmentRepository
	timeProvider   TimeProvider
	location       *time.Location
	rangeDays      int
	logger         Logger
}

// NewUseCase создает новый экземпляр use case.
// rangeDays - длина диапазона по умолчанию в днях.
func NewUseCase(
	employeeRepo EmployeeRepository,
	assignmentRepo AssignmentRepository,
	location *time.Location,
	rangeDays int,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	if rangeDays <= 0 {
		rangeDays = domain.DefaultScheduleRangeDays
	}
	return &UseCase{
		employeeRepo:   employeeRepo,
		assignmentRepo: assignmentRepo,
		timeProvider:   &RealTimeProvider{},
		location:       location,
		rangeDays:      rangeDays,
		logger:         logger,
	}
}

// Execute выполняет use case получения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация и вычисление диапазона
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetEmployeeSchedule: validation failed: %v", err)
		return nil, err
	}

	from, to, err := resolveRange(req, uc.timeProvider.Now(), uc.rangeDays, uc.location)
	if err != nil {
		uc.logger.Warn("GetEmployeeSchedule: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetEmployeeSchedule: employee=%s, range=%s..%s",
		req.EmployeeID, from.Format(time.RFC3339), to.Format(time.RFC3339))

	// 2. Получаем сотрудника
	employee, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("GetEmployeeSchedule: employee id=%s not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("GetEmployeeSchedule: failed to get employee id=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	// 3. Получаем назначения сотрудника (все статусы)
	assignments, err := uc.assignmentRepo.List(ctx, domain.AssignmentsFilter{EmployeeID: &employee.ID})
	if err != nil {
		uc.logger.Error("GetEmployeeSchedule: failed to list assignments: %v", err)
		return nil, fmt.Errorf("%w: failed to list assignments: %v", ErrInternal, err)
	}

	// 4. Отбираем назначения, начинающиеся в диапазоне
	return &Response{
		Employee:    employee,
		From:        from,
		To:          to,
		Assignments: availability.AssignmentsInRange(employee.ID, assignments, from, to),
	}, nil
}
