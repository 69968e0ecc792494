package get_time_slots

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник из фильтра не найден
	ErrEmployeeNotFound = errors.New("get_time_slots: employee not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_time_slots: invalid input data")

	// ErrRangeTooLarge возвращается, когда диапазон дат превышает допустимый
	ErrRangeTooLarge = errors.New("get_time_slots: date range is too large")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_time_slots: internal error")
)
