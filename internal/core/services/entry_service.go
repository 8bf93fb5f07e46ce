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

// entryService provides cash entry operations.
type entryService struct {
	BaseService
	entryRepo portsrepo.EntryRepository
}

// NewEntryService creates a new entry service instance.
func NewEntryService(entryRepo portsrepo.EntryRepository, resolver portssvc.CallerResolverSvc) portssvc.EntrySvcFacade {
	return &entryService{
		BaseService: BaseService{CallerResolver: resolver},
		entryRepo:   entryRepo,
	}
}

// parseEntryDate normalizes a raw date input to midnight UTC. Inputs longer
// than an ISO date are truncated first so timestamps are tolerated.
func parseEntryDate(raw string) (time.Time, error) {
	if len(raw) > 10 {
		raw = raw[:10]
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, raw)
	}
	return date, nil
}

// CreateEntry validates and records a cash movement for the acting user's
// company.
func (s *entryService) CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*domain.Entry, error) {
	caller, err := s.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, err
	}

	kind := domain.EntryKind(req.Kind)
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: kind must be IN or OUT", apperrors.ErrValidation)
	}
	if req.Amount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	date, err := parseEntryDate(req.Date)
	if err != nil {
		return nil, err
	}

	entry := domain.Entry{
		EntryID:      uuid.NewString(),
		CompanyID:    caller.CompanyID,
		RecorderID:   caller.UserID,
		RecorderName: caller.Name,
		Kind:         kind,
		Amount:       req.Amount,
		Category:     req.Category,
		Description:  req.Description,
		Date:         date,
		RecordedAt:   time.Now(),
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save entry", "company_id", caller.CompanyID)
		return nil, err
	}

	s.LogInfo(ctx, "Entry recorded", "entry_id", entry.EntryID, "kind", string(entry.Kind), "amount", entry.Amount.String())
	return &entry, nil
}

// ListEntries returns the acting user's company entries for the range,
// newest first.
func (s *entryService) ListEntries(ctx context.Context, userID string, start, end string) ([]domain.Entry, error) {
	caller, err := s.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, err
	}

	rng, err := domain.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListEntries(ctx, caller.CompanyID, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries", "company_id", caller.CompanyID)
		return nil, err
	}
	return entries, nil
}
