package services

import (
	"context"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
	portsrepo "github.com/tallyhq/tally_pro_app/internal/core/ports/repositories"
	portssvc "github.com/tallyhq/tally_pro_app/internal/core/ports/services"
)

// companyService provides company (tenant) operations.
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepository
}

// NewCompanyService creates a new company service instance.
func NewCompanyService(companyRepo portsrepo.CompanyRepository, resolver portssvc.CallerResolverSvc) portssvc.CompanySvcFacade {
	return &companyService{
		BaseService: BaseService{CallerResolver: resolver},
		companyRepo: companyRepo,
	}
}

// GetMyCompany returns the acting user's company.
func (s *companyService) GetMyCompany(ctx context.Context, userID string) (*domain.Company, error) {
	caller, err := s.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, caller.CompanyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find company", "company_id", caller.CompanyID)
		return nil, err
	}
	return company, nil
}
