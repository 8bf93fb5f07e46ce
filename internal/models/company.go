package models

import "database/sql"

// Company is the persisted tenant row.
type Company struct {
	CompanyID string         `json:"companyID" db:"company_id"`
	Name      string         `json:"name" db:"name"`
	Email     string         `json:"email" db:"email"`
	Phone     sql.NullString `json:"phone" db:"phone"`
	AuditFields
}
