package create_assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/availability"
	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	employeeRepo "github.com/m04kA/SMC-StaffScheduler/internal/infra/storage/employee"
)

const metricsOperation = "create"

// UseCase use case создания назначения с проверкой конфликтов
type UseCase struct {
	employeeRepo      EmployeeRepository
	assignmentRepo    AssignmentRepository
	txManager         TransactionManager
	notifier          Notifier
	recorder          AssignmentRecorder
	idGenerator       IDGenerator
	timeProvider      TimeProvider
	allowPastBookings bool
	logger            Logger
}

// NewUseCase создает новый экземпляр use case.
// notifier и recorder могут быть nil.
func NewUseCase(
	employeeRepo EmployeeRepository,
	assignmentRepo AssignmentRepository,
	txManager TransactionManager,
	notifier Notifier,
	recorder AssignmentRecorder,
	idGenerator IDGenerator,
	allowPastBookings bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		employeeRepo:      employeeRepo,
		assignmentRepo:    assignmentRepo,
		txManager:         txManager,
		notifier:          notifier,
		recorder:          recorder,
		idGenerator:       idGenerator,
		timeProvider:      &RealTimeProvider{},
		allowPastBookings: allowPastBookings,
		logger:            logger,
	}
}

// Execute выполняет use case создания назначения.
//
// Проверка конфликтов и вставка выполняются в одной транзакции под
// блокировкой строки сотрудника, поэтому параллельные запросы на одного
// сотрудника обрабатываются последовательно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)

	uc.logger.Info("CreateAssignment: employee=%s, start=%s, end=%s",
		req.EmployeeID, req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAssignment: validation failed: %v", err)
		return nil, err
	}

	// 2. Запрет записи в прошлое
	if !uc.allowPastBookings {
		if err := validateNotInPast(req.StartTime, uc.timeProvider.Now()); err != nil {
			uc.logger.Warn("CreateAssignment: %v", err)
			return nil, err
		}
	}

	var (
		created  *domain.Assignment
		employee *domain.Employee
	)

	// 3. Проверка конфликтов и создание в транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error

		// 3.1. Блокируем сотрудника
		employee, err = uc.employeeRepo.LockByID(txCtx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
				return ErrEmployeeNotFound
			}
			return fmt.Errorf("%w: failed to lock employee: %v", ErrInternal, err)
		}

		// 3.2. Все активные назначения сотрудника (по всем датам)
		scheduled := domain.StatusScheduled
		existing, err := uc.assignmentRepo.List(txCtx, domain.AssignmentsFilter{
			EmployeeID: &employee.ID,
			Status:     &scheduled,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to list assignments: %v", ErrInternal, err)
		}

		// 3.3. Проверяем пересечение
		if conflict := availability.FindConflict(employee.ID, req.StartTime, req.EndTime, existing); conflict != nil {
			return fmt.Errorf("%w: overlaps assignment id=%s", ErrSlotOccupied, conflict.ID)
		}

		// 3.4. Создаем назначение
		created, err = uc.assignmentRepo.Create(txCtx, &domain.Assignment{
			ID:          uc.idGenerator.NewID(),
			EmployeeID:  employee.ID,
			Title:       req.Title,
			ClientName:  req.ClientName,
			ClientEmail: req.ClientEmail,
			ClientPhone: req.ClientPhone,
			Notes:       req.Notes,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Status:      domain.StatusScheduled,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create assignment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, uc.handleTxError(err)
	}

	uc.logger.Info("CreateAssignment: assignment id=%s created for employee=%s", created.ID, employee.ID)

	// 4. Метрики
	if uc.recorder != nil {
		uc.recorder.IncAssignmentCreated()
	}

	// 5. Уведомление клиента. Ошибка доставки не отменяет запись.
	if uc.notifier != nil {
		if err := uc.notifier.SendAssignmentConfirmation(ctx, created, employee); err != nil {
			uc.logger.Warn("CreateAssignment: failed to send confirmation for id=%s: %v", created.ID, err)
		}
	}

	return &Response{Assignment: created}, nil
}

func (uc *UseCase) handleTxError(err error) error {
	switch {
	case errors.Is(err, ErrSlotOccupied):
		uc.logger.Warn("CreateAssignment: %v", err)
		if uc.recorder != nil {
			uc.recorder.IncAssignmentConflict(metricsOperation)
		}
		return ErrSlotOccupied
	case errors.Is(err, ErrEmployeeNotFound):
		uc.logger.Warn("CreateAssignment: employee not found")
		return ErrEmployeeNotFound
	case errors.Is(err, ErrInternal):
		uc.logger.Error("CreateAssignment: %v", err)
		return err
	default:
		uc.logger.Error("CreateAssignment: transaction failed: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
