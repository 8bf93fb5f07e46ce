package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally_pro_app/internal/apperrors"
	"github.com/tallyhq/tally_pro_app/internal/core/domain"
	portsrepo "github.com/tallyhq/tally_pro_app/internal/core/ports/repositories"
	portssvc "github.com/tallyhq/tally_pro_app/internal/core/ports/services"
	"github.com/tallyhq/tally_pro_app/internal/dto"
)

// extraExpenditureService provides monthly extra expenditure operations.
type extraExpenditureService struct {
	BaseService
	extraRepo portsrepo.ExtraExpenditureRepository
}

// NewExtraExpenditureService creates a new extra expenditure service instance.
func NewExtraExpenditureService(extraRepo portsrepo.ExtraExpenditureRepository, resolver portssvc.CallerResolverSvc) portssvc.ExtraExpenditureSvcFacade {
	return &extraExpenditureService{
		BaseService: BaseService{CallerResolver: resolver},
		extraRepo:   extraRepo,
	}
}

// CreateExtra records a monthly deduction. Only admins may create extras.
func (s *extraExpenditureService) CreateExtra(ctx context.Context, userID string, req dto.CreateExtraRequest) (*domain.ExtraExpenditure, error) {
	caller, err := s.ResolveAdminCaller(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Amount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	date, err := parseEntryDate(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	extra := domain.ExtraExpenditure{
		ExtraID:     uuid.NewString(),
		CompanyID:   caller.CompanyID,
		Date:        date,
		Amount:      req.Amount,
		Description: req.Description,
	}
	extra.CreatedAt = now
	extra.CreatedBy = caller.UserID
	extra.LastUpdatedAt = now
	extra.LastUpdatedBy = caller.UserID

	if err := s.extraRepo.SaveExtra(ctx, extra); err != nil {
		s.LogError(ctx, err, "Failed to save extra expenditure", "company_id", caller.CompanyID)
		return nil, err
	}

	s.LogInfo(ctx, "Extra expenditure recorded", "extra_id", extra.ExtraID, "amount", extra.Amount.String())
	return &extra, nil
}

// ListExtras returns the acting user's company extras for the range,
// ascending by date.
func (s *extraExpenditureService) ListExtras(ctx context.Context, userID string, start, end string) ([]domain.ExtraExpenditure, error) {
	caller, err := s.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, err
	}

	rng, err := domain.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}

	extras, err := s.extraRepo.ListExtras(ctx, caller.CompanyID, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to list extra expenditures", "company_id", caller.CompanyID)
		return nil, err
	}
	return extras, nil
}
