package health

import "context"

// Pinger проверяет доступность базы данных
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Error(format string, v ...interface{})
}
