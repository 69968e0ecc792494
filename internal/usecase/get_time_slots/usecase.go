package get_time_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/availability"
	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// UseCase use case получения слотов календаря
type UseCase struct {
	employeeRepo   EmployeeRepository
	assignmentRepo AssignmentRepository
	settingsRepo   SettingsRepository
	txManager      TransactionManager
	recorder       SlotsRecorder
	location       *time.Location
	logger         Logger
}

// NewUseCase создает новый экземпляр use case.
// recorder может быть nil, если метрики отключены.
func NewUseCase(
	employeeRepo EmployeeRepository,
	assignmentRepo AssignmentRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	recorder SlotsRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		employeeRepo:   employeeRepo,
		assignmentRepo: assignmentRepo,
		settingsRepo:   settingsRepo,
		txManager:      txManager,
		recorder:       recorder,
		location:       location,
		logger:         logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetTimeSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Переводим даты в часовой пояс календаря
	startDate := dateIn(req.StartDate, uc.location)
	endDate := dateIn(req.EndDate, uc.location)

	uc.logger.Info("GetTimeSlots: range=%s..%s, employee=%v",
		startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat), valueOr(req.EmployeeID, "all"))

	if err := validateRange(startDate, endDate); err != nil {
		uc.logger.Warn("GetTimeSlots: validation failed: %v", err)
		return nil, err
	}

	var (
		settings    *domain.CalendarSettings
		employees   []*domain.Employee
		assignments []*domain.Assignment
	)

	// 3. Читаем согласованный снимок настроек, сотрудников и назначений
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		settings, err = uc.settingsRepo.Get(txCtx)
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}

		employees, err = uc.employeeRepo.List(txCtx)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}

		// Занятость определяется по дню начала назначения,
		// поэтому достаточно назначений, начинающихся внутри диапазона
		scheduled := domain.StatusScheduled
		until := endDate.AddDate(0, 0, 1)
		assignments, err = uc.assignmentRepo.List(txCtx, domain.AssignmentsFilter{
			EmployeeID:  req.EmployeeID,
			Status:      &scheduled,
			StartsFrom:  &startDate,
			StartsUntil: &until,
		})
		if err != nil {
			return fmt.Errorf("failed to list assignments: %w", err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("GetTimeSlots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if req.EmployeeID != nil && !containsEmployee(employees, *req.EmployeeID) {
		uc.logger.Warn("GetTimeSlots: employee not found: id=%s", *req.EmployeeID)
		return nil, fmt.Errorf("%w: id=%s", ErrEmployeeNotFound, *req.EmployeeID)
	}

	// 4. Генерируем слоты
	slots := availability.ComputeTimeSlots(employees, assignments, settings, startDate, endDate, req.EmployeeID)

	resp := &Response{
		StartDate:           startDate,
		EndDate:             endDate,
		SlotDurationMinutes: settings.SlotDurationMinutes,
		Slots:               make([]Slot, 0, len(slots)),
	}

	available := 0
	for _, s := range slots {
		if s.Available {
			available++
		}
		resp.Slots = append(resp.Slots, Slot{
			Start:        s.Start,
			End:          s.End,
			Available:    s.Available,
			EmployeeID:   s.EmployeeID,
			AssignmentID: s.AssignmentID,
		})
	}

	// 5. Метрики
	if uc.recorder != nil {
		uc.recorder.ObserveTimeSlots(available, len(slots)-available)
	}

	uc.logger.Info("GetTimeSlots: generated %d slots, %d available", len(slots), available)

	return resp, nil
}

func valueOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}

func containsEmployee(employees []*domain.Employee, id string) bool {
	for _, e := range employees {
		if e.ID == id {
			return true
		}
	}
	return false
}
