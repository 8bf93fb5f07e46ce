package domain

import "time"

// Shift is one employee work period. ClockOut is nil while the shift is
// still open; it is set exactly once on clock-out.
type Shift struct {
	ShiftID      string     `json:"shiftID"`   // Primary Key (e.g., UUID)
	CompanyID    string     `json:"companyID"` // FK -> companies.company_id
	RecorderID   string     `json:"recorderID"`
	RecorderName string     `json:"recorderName,omitempty"`
	ClockIn      time.Time  `json:"clockIn"`
	ClockOut     *time.Time `json:"clockOut"`
}

// Open reports whether the shift has not been clocked out yet.
func (s Shift) Open() bool {
	return s.ClockOut == nil
}

// Hours returns the worked hours for a closed shift, or 0 while open.
func (s Shift) Hours() float64 {
	if s.ClockOut == nil {
		return 0
	}
	return s.ClockOut.Sub(s.ClockIn).Hours()
}
