package export_employee_schedule

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	getSchedule "github.com/m04kA/SMC-StaffScheduler/internal/usecase/get_employee_schedule"
)

const productID = "-//SMC//StaffScheduler//EN"

// BuildCalendar собирает iCalendar из расписания сотрудника.
// Каждое назначение становится VEVENT, время пишется в UTC.
func BuildCalendar(schedule *getSchedule.Response, generatedAt time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for _, a := range schedule.Assignments {
		cal.Children = append(cal.Children, buildEvent(a, schedule.Employee, generatedAt).Component)
	}

	return cal
}

// WriteCalendar кодирует календарь в w
func WriteCalendar(w io.Writer, cal *ical.Calendar) error {
	return ical.NewEncoder(w).Encode(cal)
}

func buildEvent(a *domain.Assignment, employee *domain.Employee, generatedAt time.Time) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, a.ID+"@staff-scheduler")
	event.Props.SetDateTime(ical.PropDateTimeStamp, generatedAt.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, a.StartTime.UTC())
	event.Props.SetDateTime(ical.PropDateTimeEnd, a.EndTime.UTC())
	event.Props.SetText(ical.PropSummary, summary(a))
	event.Props.SetText(ical.PropStatus, eventStatus(a.Status))

	if description := describe(a, employee); description != "" {
		event.Props.SetText(ical.PropDescription, description)
	}

	return event
}

func summary(a *domain.Assignment) string {
	switch {
	case a.Title != "" && a.ClientName != "":
		return fmt.Sprintf("%s - %s", a.Title, a.ClientName)
	case a.Title != "":
		return a.Title
	default:
		return a.ClientName
	}
}

func describe(a *domain.Assignment, employee *domain.Employee) string {
	lines := make([]string, 0, 4)
	if employee != nil {
		lines = append(lines, "Employee: "+employee.Name)
	}
	if a.ClientEmail != "" {
		lines = append(lines, "Email: "+a.ClientEmail)
	}
	if a.ClientPhone != nil {
		lines = append(lines, "Phone: "+*a.ClientPhone)
	}
	if a.Notes != nil {
		lines = append(lines, *a.Notes)
	}
	return strings.Join(lines, "\n")
}

// eventStatus сопоставляет статус назначения со статусом VEVENT (RFC 5545)
func eventStatus(status domain.AssignmentStatus) string {
	if status == domain.StatusCancelled {
		return "CANCELLED"
	}
	return "CONFIRMED"
}
