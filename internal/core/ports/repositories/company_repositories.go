package repositories

import (
	"context"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
)

// CompanyRepository defines persistence operations for companies (tenants).
type CompanyRepository interface {
	SaveCompany(ctx context.Context, company domain.Company) error
	// FindCompanyByID returns apperrors.ErrNotFound when no company matches.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	// FindCompanyByName returns apperrors.ErrNotFound when no company matches.
	// Registration uses it to join an existing company by name.
	FindCompanyByName(ctx context.Context, name string) (*domain.Company, error)
}
