package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind indicates the direction of a cash movement.
type EntryKind string

const (
	KindIn  EntryKind = "IN"
	KindOut EntryKind = "OUT"
)

// Valid reports whether k is one of the two supported kinds.
func (k EntryKind) Valid() bool {
	return k == KindIn || k == KindOut
}

// Entry is a single cash movement recorded by an employee. Entries are
// immutable once created; Amount is always a magnitude and the sign is
// implied by Kind.
type Entry struct {
	EntryID      string          `json:"entryID"`   // Primary Key (e.g., UUID)
	CompanyID    string          `json:"companyID"` // FK -> companies.company_id
	RecorderID   string          `json:"recorderID"`
	RecorderName string          `json:"recorderName,omitempty"` // Resolved display name, not persisted on the row
	Kind         EntryKind       `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`   // Non-negative magnitude
	Category     *string         `json:"category"` // Nil when uncategorized
	Description  string          `json:"description"`
	Date         time.Time       `json:"date"`       // Calendar date, midnight UTC
	RecordedAt   time.Time       `json:"recordedAt"` // Stable ordering within a date
}

// UncategorizedLabel is the display label for entries without a category.
const UncategorizedLabel = "Uncategorized"

// CategoryLabel returns the entry's category, or UncategorizedLabel when absent.
func (e Entry) CategoryLabel() string {
	if e.Category == nil || *e.Category == "" {
		return UncategorizedLabel
	}
	return *e.Category
}
