package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// QueryString возвращает параметр запроса или nil, если он не передан
func QueryString(r *http.Request, name string) *string {
	value := strings.TrimSpace(r.URL.Query().Get(name))
	if value == "" {
		return nil
	}
	return &value
}

// QueryDate парсит параметр формата YYYY-MM-DD в часовом поясе loc.
// Отсутствующий параметр дает nil без ошибки.
func QueryDate(r *http.Request, name string, loc *time.Location) (*time.Time, error) {
	value := QueryString(r, name)
	if value == nil {
		return nil, nil
	}

	date, err := ParseDate(*value, loc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &date, nil
}

// ParseDate парсит дату YYYY-MM-DD в часовом поясе loc.
// Для совместимости принимается и полная метка времени RFC 3339:
// от нее берется календарная дата в loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if date, err := time.ParseInLocation(domain.DateFormat, value, loc); err == nil {
		return date, nil
	}

	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD, got %q", value)
	}

	y, m, d := ts.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
}

// ParseTimestamp парсит метку времени RFC 3339 (со смещением)
func ParseTimestamp(value string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("expected RFC 3339 timestamp, got %q", value)
	}
	return ts, nil
}
