package notifier

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier: internal error")

	// ErrDeliveryFailed возвращается, когда получатель уведомления ответил ошибкой
	ErrDeliveryFailed = errors.New("notifier: delivery failed")
)
