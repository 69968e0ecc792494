package update_assignment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StaffScheduler/internal/availability"
	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-StaffScheduler/internal/infra/storage/assignment"
	employeeRepo "github.com/m04kA/SMC-StaffScheduler/internal/infra/storage/employee"
)

const metricsOperation = "update"

// UseCase use case изменения (переноса) назначения
type UseCase struct {
	employeeRepo   EmployeeRepository
	assignmentRepo AssignmentRepository
	txManager      TransactionManager
	recorder       ConflictRecorder
	logger         Logger
}

// NewUseCase создает новый экземпляр use case. recorder может быть nil.
func NewUseCase(
	employeeRepo EmployeeRepository,
	assignmentRepo AssignmentRepository,
	txManager TransactionManager,
	recorder ConflictRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		employeeRepo:   employeeRepo,
		assignmentRepo: assignmentRepo,
		txManager:      txManager,
		recorder:       recorder,
		logger:         logger,
	}
}

// Execute выполняет use case изменения назначения.
// При изменении времени или сотрудника повторяет проверку конфликтов,
// исключая само назначение.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req.ID = strings.TrimSpace(req.ID)
	if req.ID == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	uc.logger.Info("UpdateAssignment: id=%s", req.ID)

	var result *domain.Assignment

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем назначение (в транзакции строка блокируется)
		current, err := uc.assignmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
				return ErrAssignmentNotFound
			}
			return fmt.Errorf("%w: failed to get assignment: %v", ErrInternal, err)
		}

		// 2. Применяем изменения и валидируем результат
		updated := apply(req, current)
		if err := validateAssignment(updated); err != nil {
			return err
		}

		// 3. Перенос: только scheduled, с проверкой конфликтов
		if changesSchedule(req, current) {
			if !current.CanBeRescheduled() {
				return fmt.Errorf("%w: status is %s", ErrNotReschedulable, current.Status)
			}

			employee, err := uc.employeeRepo.LockByID(txCtx, updated.EmployeeID)
			if err != nil {
				if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
					return ErrEmployeeNotFound
				}
				return fmt.Errorf("%w: failed to lock employee: %v", ErrInternal, err)
			}

			scheduled := domain.StatusScheduled
			existing, err := uc.assignmentRepo.List(txCtx, domain.AssignmentsFilter{
				EmployeeID: &employee.ID,
				Status:     &scheduled,
			})
			if err != nil {
				return fmt.Errorf("%w: failed to list assignments: %v", ErrInternal, err)
			}

			conflict := availability.FindConflictExcluding(employee.ID, updated.StartTime, updated.EndTime, existing, updated.ID)
			if conflict != nil {
				return fmt.Errorf("%w: overlaps assignment id=%s", ErrSlotOccupied, conflict.ID)
			}
		}

		// 4. Сохраняем
		result, err = uc.assignmentRepo.Update(txCtx, updated)
		if err != nil {
			if errors.Is(err, assignmentRepo.ErrEmployeeNotFound) {
				return ErrEmployeeNotFound
			}
			return fmt.Errorf("%w: failed to update assignment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, uc.handleTxError(err)
	}

	uc.logger.Info("UpdateAssignment: assignment id=%s updated", result.ID)
	return &Response{Assignment: result}, nil
}

func (uc *UseCase) handleTxError(err error) error {
	switch {
	case errors.Is(err, ErrSlotOccupied):
		uc.logger.Warn("UpdateAssignment: %v", err)
		if uc.recorder != nil {
			uc.recorder.IncAssignmentConflict(metricsOperation)
		}
		return ErrSlotOccupied
	case errors.Is(err, ErrAssignmentNotFound),
		errors.Is(err, ErrEmployeeNotFound),
		errors.Is(err, ErrNotReschedulable),
		errors.Is(err, ErrInvalidInput):
		uc.logger.Warn("UpdateAssignment: %v", err)
		return err
	case errors.Is(err, ErrInternal):
		uc.logger.Error("UpdateAssignment: %v", err)
		return err
	default:
		uc.logger.Error("UpdateAssignment: transaction failed: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
