package get_time_slots

import "time"

// Request модель запроса слотов
type Request struct {
	StartDate  time.Time // Первый день диапазона (время суток игнорируется)
	EndDate    time.Time // Последний день диапазона, включительно
	EmployeeID *string   // Фильтр по сотруднику (опционально)
}

// Response модель ответа со слотами
type Response struct {
	StartDate           time.Time
	EndDate             time.Time
	SlotDurationMinutes int
	Slots               []Slot
}

// Slot модель временного слота
type Slot struct {
	Start        time.Time
	End          time.Time
	Available    bool
	EmployeeID   string
	AssignmentID *string // ID занимающего назначения, если слот занят
}
