package employees

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	employeeRepo "github.com/m04kA/SMC-StaffScheduler/internal/infra/storage/employee"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/employees/models"
)

// Service сервис для работы с сотрудниками
type Service struct {
	employeeRepo EmployeeRepository
	idGenerator  IDGenerator
	defaultHours domain.WorkHours
	logger       Logger
}

// NewService создает новый экземпляр сервиса сотрудников.
// defaultHours применяются, если при создании рабочие часы не переданы.
func NewService(
	employeeRepo EmployeeRepository,
	idGenerator IDGenerator,
	defaultHours domain.WorkHours,
	logger Logger,
) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		idGenerator:  idGenerator,
		defaultHours: defaultHours,
		logger:       logger,
	}
}

// Create создает нового сотрудника
func (s *Service) Create(ctx context.Context, req *models.CreateEmployeeRequest) (*models.EmployeeResponse, error) {
	s.logger.Info("Create: creating employee name=%q", req.Name)

	employee := &domain.Employee{
		ID:        s.idGenerator.NewID(),
		Name:      strings.TrimSpace(req.Name),
		Email:     normalizeOptional(req.Email),
		Position:  normalizeOptional(req.Position),
		WorkHours: s.defaultHours,
	}
	if req.WorkHours != nil {
		employee.WorkHours = domain.WorkHours{Start: req.WorkHours.Start, End: req.WorkHours.End}
	}

	if err := validateEmployee(employee); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.employeeRepo.Create(ctx, employee)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrDuplicateEmail) {
			s.logger.Warn("Create: email %q already in use", *employee.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Create: failed to create employee: %v", err)
		return nil, fmt.Errorf("%w: failed to create employee: %v", ErrInternal, err)
	}

	s.logger.Info("Create: employee id=%s created", created.ID)
	return models.FromDomain(created), nil
}

// GetByID получает сотрудника по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.EmployeeResponse, error) {
	employee, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomain(employee), nil
}

// List возвращает всех сотрудников
func (s *Service) List(ctx context.Context) (*models.EmployeeListResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to list employees: %v", err)
		return nil, fmt.Errorf("%w: failed to list employees: %v", ErrInternal, err)
	}

	resp := &models.EmployeeListResponse{Employees: make([]models.EmployeeResponse, 0, len(employees))}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, *models.FromDomain(e))
	}
	return resp, nil
}

// Update обновляет данные сотрудника (частичное обновление)
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateEmployeeRequest) (*models.EmployeeResponse, error) {
	s.logger.Info("Update: updating employee id=%s", id)

	employee, err := s.get(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		employee.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		employee.Email = normalizeOptional(req.Email)
	}
	if req.Position != nil {
		employee.Position = normalizeOptional(req.Position)
	}
	if req.WorkHours != nil {
		employee.WorkHours = domain.WorkHours{Start: req.WorkHours.Start, End: req.WorkHours.End}
	}

	if err := validateEmployee(employee); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.employeeRepo.Update(ctx, employee)
	if err != nil {
		switch {
		case errors.Is(err, employeeRepo.ErrEmployeeNotFound):
			return nil, ErrEmployeeNotFound
		case errors.Is(err, employeeRepo.ErrDuplicateEmail):
			s.logger.Warn("Update: email already in use")
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Update: failed to update employee id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to update employee: %v", ErrInternal, err)
	}

	return models.FromDomain(updated), nil
}

// Delete удаляет сотрудника вместе с его назначениями
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting employee id=%s", id)

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("Delete: employee id=%s not found", id)
			return ErrEmployeeNotFound
		}
		s.logger.Error("Delete: failed to delete employee id=%s: %v", id, err)
		return fmt.Errorf("%w: failed to delete employee: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) get(ctx context.Context, op, id string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("%s: employee id=%s not found", op, id)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("%s: failed to get employee id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}
	return employee, nil
}

// validateEmployee валидирует данные сотрудника
func validateEmployee(e *domain.Employee) error {
	if e.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(e.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if e.Email != nil {
		if _, err := mail.ParseAddress(*e.Email); err != nil {
			return fmt.Errorf("%w: invalid email %q", ErrInvalidInput, *e.Email)
		}
	}

	if err := e.WorkHours.Start.Validate(); err != nil {
		return fmt.Errorf("%w: workHours.start: %v", ErrInvalidInput, err)
	}
	if err := e.WorkHours.End.Validate(); err != nil {
		return fmt.Errorf("%w: workHours.end: %v", ErrInvalidInput, err)
	}
	if !e.WorkHours.IsValid() {
		return fmt.Errorf("%w: workHours.start must be before workHours.end", ErrInvalidInput)
	}

	return nil
}

// normalizeOptional обрезает пробелы, пустая строка превращается в nil
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
