package update_assignment

import "errors"

var (
	// ErrAssignmentNotFound возвращается, когда назначение не найдено
	ErrAssignmentNotFound = errors.New("update_assignment: assignment not found")

	// ErrEmployeeNotFound возвращается, когда новый сотрудник не найден
	ErrEmployeeNotFound = errors.New("update_assignment: employee not found")

	// ErrSlotOccupied возвращается, когда новый интервал пересекается с другим назначением
	ErrSlotOccupied = errors.New("update_assignment: time slot is already occupied")

	// ErrNotReschedulable возвращается при переносе завершенного или отмененного назначения
	ErrNotReschedulable = errors.New("update_assignment: only scheduled assignments can be rescheduled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_assignment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_assignment: internal error")
)
