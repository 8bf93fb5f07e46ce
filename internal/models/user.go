package models

// User represents a user of the application. Every user belongs to exactly
// one company and carries a bcrypt password hash for authentication.
type User struct {
	UserID       string `json:"userID" db:"user_id"`
	CompanyID    string `json:"companyID" db:"company_id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
	AuditFields
}
