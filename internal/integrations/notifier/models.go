package notifier

import "time"

// Confirmation письмо-подтверждение записи клиента
type Confirmation struct {
	From         string    `json:"from"`
	To           string    `json:"to"`
	Subject      string    `json:"subject"`
	Body         string    `json:"body"`
	AssignmentID string    `json:"assignmentId"`
	EmployeeName string    `json:"employeeName"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
