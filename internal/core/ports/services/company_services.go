package services

import (
	"context"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
)

// CompanySvcFacade defines company (tenant) operations.
type CompanySvcFacade interface {
	// GetMyCompany returns the company of the acting user.
	GetMyCompany(ctx context.Context, userID string) (*domain.Company, error)
}
