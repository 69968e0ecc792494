package get_time_slots

import (
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	getTimeSlots "github.com/m04kA/SMC-StaffScheduler/internal/usecase/get_time_slots"
)

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	StartDate    string     `json:"startDate"`
	EndDate      string     `json:"endDate"`
	SlotDuration int        `json:"slotDuration"`
	Slots        []TimeSlot `json:"slots"`
}

// TimeSlot модель временного слота
type TimeSlot struct {
	Start        string  `json:"start"`
	End          string  `json:"end"`
	Available    bool    `json:"available"`
	EmployeeID   string  `json:"employeeId"`
	AssignmentID *string `json:"assignmentId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeSlots.Response) *TimeSlotsResponse {
	slots := make([]TimeSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = TimeSlot{
			Start:        slot.Start.Format(time.RFC3339),
			End:          slot.End.Format(time.RFC3339),
			Available:    slot.Available,
			EmployeeID:   slot.EmployeeID,
			AssignmentID: slot.AssignmentID,
		}
	}

	return &TimeSlotsResponse{
		StartDate:    resp.StartDate.Format(domain.DateFormat),
		EndDate:      resp.EndDate.Format(domain.DateFormat),
		SlotDuration: resp.SlotDurationMinutes,
		Slots:        slots,
	}
}
