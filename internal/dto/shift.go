package dto

import (
	"time"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
)

// ShiftResponse is the public shape of a shift. ClockOut is null while the
// shift is still open.
type ShiftResponse struct {
	ShiftID      string     `json:"shiftID"`
	RecorderID   string     `json:"recorderID"`
	RecorderName string     `json:"recorderName"`
	ClockIn      time.Time  `json:"clockIn"`
	ClockOut     *time.Time `json:"clockOut"`
}

// ListShiftsResponse wraps the shifts of a range.
type ListShiftsResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
}

// ToShiftResponse converts a domain.Shift to its response DTO.
func ToShiftResponse(shift *domain.Shift) ShiftResponse {
	return ShiftResponse{
		ShiftID:      shift.ShiftID,
		RecorderID:   shift.RecorderID,
		RecorderName: shift.RecorderName,
		ClockIn:      shift.ClockIn,
		ClockOut:     shift.ClockOut,
	}
}

// ToListShiftsResponse converts a slice of domain.Shift to its response DTO.
func ToListShiftsResponse(shifts []domain.Shift) ListShiftsResponse {
	shiftResponses := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		shiftResponses[i] = ToShiftResponse(&shifts[i])
	}
	return ListShiftsResponse{Shifts: shiftResponses}
}
