package services

import (
	"context"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
	portsrepo "github.com/tallyhq/tally_pro_app/internal/core/ports/repositories"
	portssvc "github.com/tallyhq/tally_pro_app/internal/core/ports/services"
	"github.com/tallyhq/tally_pro_app/internal/utils/accounting"
)

// reportingService produces derived reports. It only fetches the range's
// snapshot through the repositories and delegates all aggregation to the
// accounting package, so the same snapshot always yields the same report.
type reportingService struct {
	BaseService
	entryRepo portsrepo.EntryRepository
	extraRepo portsrepo.ExtraExpenditureRepository
	shiftRepo portsrepo.ShiftRepository
}

// NewReportingService creates a new reporting service instance.
func NewReportingService(
	entryRepo portsrepo.EntryRepository,
	extraRepo portsrepo.ExtraExpenditureRepository,
	shiftRepo portsrepo.ShiftRepository,
	resolver portssvc.CallerResolverSvc,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		BaseService: BaseService{CallerResolver: resolver},
		entryRepo:   entryRepo,
		extraRepo:   extraRepo,
		shiftRepo:   shiftRepo,
	}
}

// Summary buckets the range's entries by the requested period and, for
// monthly buckets, applies extra expenditures.
func (s *reportingService) Summary(ctx context.Context, userID string, start, end, period string) (*domain.SummaryReport, error) {
	caller, err := s.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, err
	}

	rng, err := domain.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	p, err := domain.ParsePeriod(period)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListEntriesForReport(ctx, caller.CompanyID, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch entries for summary", "company_id", caller.CompanyID)
		return nil, err
	}

	var extras []domain.ExtraExpenditure
	if p == domain.PeriodMonthly {
		extras, err = s.extraRepo.ListExtras(ctx, caller.CompanyID, rng)
		if err != nil {
			s.LogError(ctx, err, "Failed to fetch extras for summary", "company_id", caller.CompanyID)
			return nil, err
		}
	}

	return accounting.Summarize(entries, extras, p, rng)
}

// ByEmployee breaks the range down per recorder display name.
func (s *reportingService) ByEmployee(ctx context.Context, userID string, start, end string) (*domain.BreakdownReport, error) {
	entries, rng, err := s.fetchEntries(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return accounting.ByEmployee(entries, rng), nil
}

// ByCategory breaks the range down per category label.
func (s *reportingService) ByCategory(ctx context.Context, userID string, start, end string) (*domain.BreakdownReport, error) {
	entries, rng, err := s.fetchEntries(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return accounting.ByCategory(entries, rng), nil
}

// Traffic returns per-day shift counts and worked hours for the range.
func (s *reportingService) Traffic(ctx context.Context, userID string, start, end string) (domain.DateRange, []domain.TrafficRow, error) {
	caller, err := s.ResolveCaller(ctx, userID)
	if err != nil {
		return domain.DateRange{}, nil, err
	}

	rng, err := domain.NewDateRange(start, end)
	if err != nil {
		return domain.DateRange{}, nil, err
	}

	shifts, err := s.shiftRepo.ListShiftsByRange(ctx, caller.CompanyID, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch shifts for traffic report", "company_id", caller.CompanyID)
		return domain.DateRange{}, nil, err
	}

	return rng, accounting.TrafficByDay(shifts), nil
}

func (s *reportingService) fetchEntries(ctx context.Context, userID, start, end string) ([]domain.Entry, domain.DateRange, error) {
	caller, err := s.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, domain.DateRange{}, err
	}

	rng, err := domain.NewDateRange(start, end)
	if err != nil {
		return nil, domain.DateRange{}, err
	}

	entries, err := s.entryRepo.ListEntriesForReport(ctx, caller.CompanyID, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch entries for breakdown", "company_id", caller.CompanyID)
		return nil, domain.DateRange{}, err
	}
	return entries, rng, nil
}
