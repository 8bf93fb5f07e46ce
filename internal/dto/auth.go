package dto

// RegisterRequest creates a company (or joins an existing one by name) and
// its first admin user in one step.
type RegisterRequest struct {
	CompanyName  string `json:"companyName" binding:"required"`
	CompanyEmail string `json:"companyEmail" binding:"required,email"`
	CompanyPhone string `json:"companyPhone"`
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
}

// LoginRequest carries email/password credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed JWT for the session.
type LoginResponse struct {
	Token string `json:"token"`
}
