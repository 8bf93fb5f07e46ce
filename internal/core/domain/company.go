package domain

// Company is the tenant boundary. Every ledger row belongs to exactly one company.
type Company struct {
	CompanyID string `json:"companyID"` // Primary Key (e.g., UUID)
	Name      string `json:"name"`      // Unique display name, also the registration join key
	Email     string `json:"email"`
	Phone     string `json:"phone"` // Optional
	AuditFields
}

// UserCompanyRole defines the possible roles a user can have within a company.
type UserCompanyRole string

const (
	RoleAdmin    UserCompanyRole = "ADMIN"
	RoleEmployee UserCompanyRole = "EMPLOYEE"
)
