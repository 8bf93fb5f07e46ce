package domain

// User is an employee or admin account scoped to a single company.
type User struct {
	UserID       string          `json:"userID"`    // Primary Key (e.g., UUID)
	CompanyID    string          `json:"companyID"` // FK -> companies.company_id
	Name         string          `json:"name"`
	Email        string          `json:"email"` // Lowercased, globally unique
	PasswordHash string          `json:"-"`     // bcrypt hash, never serialized
	Role         UserCompanyRole `json:"role"`
	AuditFields
}
