package create_assignment

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("create_assignment: employee not found")

	// ErrSlotOccupied возвращается, когда интервал пересекается с другим назначением сотрудника
	ErrSlotOccupied = errors.New("create_assignment: time slot is already occupied")

	// ErrStartInPast возвращается при попытке записи на прошедшее время
	ErrStartInPast = errors.New("create_assignment: start time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_assignment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_assignment: internal error")
)
