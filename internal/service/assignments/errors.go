package assignments

import "errors"

var (
	// ErrAssignmentNotFound возвращается, когда назначение не найдено
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrInvalidStatusTransition возвращается при недопустимой смене статуса
	ErrInvalidStatusTransition = errors.New("invalid assignment status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("assignments.service: internal error")
)
