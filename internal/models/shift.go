package models

import (
	"database/sql"
	"time"
)

// Shift is the persisted work period row. ClockOut is NULL while open and
// set exactly once on clock-out.
type Shift struct {
	ShiftID      string       `json:"shiftID" db:"shift_id"`
	CompanyID    string       `json:"companyID" db:"company_id"`
	RecorderID   string       `json:"recorderID" db:"recorder_id"`
	RecorderName string       `json:"recorderName" db:"recorder_name"` // Joined from users
	ClockIn      time.Time    `json:"clockIn" db:"clock_in"`
	ClockOut     sql.NullTime `json:"clockOut" db:"clock_out"`
}
