package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is the persisted cash movement row.
// Note: Amount should use a precise decimal type like github.com/shopspring/decimal
type Entry struct {
	EntryID      string          `json:"entryID" db:"entry_id"`
	CompanyID    string          `json:"companyID" db:"company_id"`
	RecorderID   string          `json:"recorderID" db:"recorder_id"`
	RecorderName string          `json:"recorderName" db:"recorder_name"` // Joined from users, not a column on entries
	Kind         string          `json:"kind" db:"kind"`                  // IN or OUT
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Category     sql.NullString  `json:"category" db:"category"`
	Description  sql.NullString  `json:"description" db:"description"`
	Date         time.Time       `json:"date" db:"entry_date"`
	RecordedAt   time.Time       `json:"recordedAt" db:"recorded_at"`
}
