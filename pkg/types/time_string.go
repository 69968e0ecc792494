package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidFormat возвращается, когда строка не соответствует формату HH:MM
var ErrInvalidFormat = errors.New("invalid time string format")

// ErrOutOfDay возвращается, когда результат арифметики выходит за пределы суток
var ErrOutOfDay = errors.New("time string out of day bounds")

const (
	layout        = "15:04"
	minutesPerDay = 24 * 60
)

// TimeString время суток в формате HH:MM (24-часовой формат, без часового пояса)
type TimeString string

// NewTimeString создает TimeString из часов и минут переданного времени
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(layout))
}

// NewTimeStringFromString парсит строку "HH:MM" (допускается "HH:MM:SS" из БД)
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)

	// Postgres отдает TIME как HH:MM:SS
	if len(s) == len("15:04:05") {
		s = s[:len(layout)]
	}

	hour, minute, err := parse(s)
	if err != nil {
		return "", err
	}

	return fromMinutes(hour*60 + minute), nil
}

// MustTimeString как NewTimeStringFromString, но паникует на некорректной строке.
// Используется в тестах и для констант.
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// Validate проверяет формат
func (t TimeString) Validate() error {
	_, _, err := parse(string(t))
	return err
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление HH:MM
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() int {
	hour, minute, _ := parse(string(t))
	return hour*60 + minute
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// Equal сравнивает два значения без учета формата записи
func (t TimeString) Equal(other TimeString) bool {
	return t.Minutes() == other.Minutes()
}

// AddMinutes сдвигает время на n минут. Выход за пределы суток - ошибка
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	total := t.Minutes() + n
	if total < 0 || total >= minutesPerDay {
		return "", fmt.Errorf("%w: %s%+d min", ErrOutOfDay, t, n)
	}

	return fromMinutes(total), nil
}

// OnDate привязывает время суток к календарной дате в часовом поясе даты.
// Секунды и наносекунды обнуляются.
func (t TimeString) OnDate(date time.Time) time.Time {
	hour, minute, _ := parse(string(t))
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// Scan реализует sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidFormat, src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

func parse(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, ErrInvalidFormat
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, ErrInvalidFormat
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, ErrInvalidFormat
	}

	return hour, minute, nil
}

func fromMinutes(total int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
}
