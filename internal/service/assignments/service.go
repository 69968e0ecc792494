package assignments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-StaffScheduler/internal/infra/storage/assignment"
	"github.com/m04kA/SMC-StaffScheduler/internal/service/assignments/models"
)

// Service сервис для чтения назначений и управления их статусом.
// Создание и перенос назначений выполняются в use case с проверкой конфликтов.
type Service struct {
	assignmentRepo AssignmentRepository
	txManager      TransactionManager
	location       *time.Location
	logger         Logger
}

// NewService создает новый экземпляр сервиса назначений
func NewService(
	assignmentRepo AssignmentRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		assignmentRepo: assignmentRepo,
		txManager:      txManager,
		location:       location,
		logger:         logger,
	}
}

// GetByID получает назначение по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AssignmentResponse, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			s.logger.Warn("GetByID: assignment id=%s not found", id)
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("GetByID: failed to get assignment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get assignment: %v", ErrInternal, err)
	}
	return models.FromDomain(assignment, s.location), nil
}

// List возвращает назначения по фильтру
func (s *Service) List(ctx context.Context, req *models.ListAssignmentsRequest) (*models.AssignmentListResponse, error) {
	filter := domain.AssignmentsFilter{
		EmployeeID:  req.EmployeeID,
		StartsFrom:  req.StartsFrom,
		StartsUntil: req.StartsTo,
	}

	if req.Status != nil {
		status := domain.AssignmentStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	if req.StartsFrom != nil && req.StartsTo != nil && req.StartsTo.Before(*req.StartsFrom) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	list, err := s.assignmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: failed to list assignments: %v", err)
		return nil, fmt.Errorf("%w: failed to list assignments: %v", ErrInternal, err)
	}

	return models.FromDomainList(list, s.location), nil
}

// UpdateStatus переводит назначение в completed или cancelled.
// Допустимы только переходы из scheduled.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.AssignmentResponse, error) {
	next := domain.AssignmentStatus(req.Status)
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	s.logger.Info("UpdateStatus: assignment id=%s -> %s", id, next)

	var result *domain.Assignment

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// В транзакции GetByID блокирует строку назначения
		assignment, err := s.assignmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
				return ErrAssignmentNotFound
			}
			return fmt.Errorf("%w: failed to get assignment: %v", ErrInternal, err)
		}

		if !assignment.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, assignment.Status, next)
		}

		if err := s.assignmentRepo.UpdateStatus(txCtx, id, next); err != nil {
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		assignment.Status = next
		result = assignment
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("UpdateStatus: %v", err)
		} else {
			s.logger.Warn("UpdateStatus: %v", err)
		}
		if !errors.Is(err, ErrAssignmentNotFound) && !errors.Is(err, ErrInvalidStatusTransition) && !errors.Is(err, ErrInternal) {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	return models.FromDomain(result, s.location), nil
}

// Delete удаляет назначение
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting assignment id=%s", id)

	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			s.logger.Warn("Delete: assignment id=%s not found", id)
			return ErrAssignmentNotFound
		}
		s.logger.Error("Delete: failed to delete assignment id=%s: %v", id, err)
		return fmt.Errorf("%w: failed to delete assignment: %v", ErrInternal, err)
	}

	return nil
}
