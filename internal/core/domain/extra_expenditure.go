package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExtraExpenditure is a monthly-only deduction not tied to a normal entry
// category. It is only consumed when bucketing by month.
type ExtraExpenditure struct {
	ExtraID     string          `json:"extraID"`   // Primary Key (e.g., UUID)
	CompanyID   string          `json:"companyID"` // FK -> companies.company_id
	Date        time.Time       `json:"date"`      // Calendar date, midnight UTC
	Amount      decimal.Decimal `json:"amount"`    // Non-negative magnitude
	Description string          `json:"description"`
	AuditFields
}
