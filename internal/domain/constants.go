package domain

// Значения календаря по умолчанию (используются при первой инициализации настроек)
const (
	DefaultSlotDurationMinutes = 60
	DefaultWorkStartTime       = "09:00"
	DefaultWorkEndTime         = "17:00"
	DefaultScheduleRangeDays   = 7 // период расписания сотрудника, если даты не переданы
)

// Ограничения бизнес-валидации
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 часов
	MaxNameLength          = 200
	MaxTitleLength         = 200
	MaxNotesLength         = 1000
	MaxRangeDays           = 92 // максимальный диапазон запроса слотов
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
