package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// ExtraExpenditure is the persisted monthly deduction row.
type ExtraExpenditure struct {
	ExtraID     string          `json:"extraID" db:"extra_id"`
	CompanyID   string          `json:"companyID" db:"company_id"`
	Date        time.Time       `json:"date" db:"expense_date"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Description sql.NullString  `json:"description" db:"description"`
	AuditFields
}
