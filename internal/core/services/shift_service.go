package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
	portsrepo "github.com/tallyhq/tally_pro_app/internal/core/ports/repositories"
	portssvc "github.com/tallyhq/tally_pro_app/internal/core/ports/services"
)

// shiftService provides shift clock operations. Clock transitions for the
// same recorder are serialized through a per-recorder mutex so concurrent
// clock-ins cannot race past the open-shift check. The repository enforces
// the same invariant with conditional statements as a second line.
type shiftService struct {
	BaseService
	shiftRepo portsrepo.ShiftRepository
	locks     sync.Map // map[string]*sync.Mutex keyed by companyID+recorderID
}

// NewShiftService creates a new shift service instance.
func NewShiftService(shiftRepo portsrepo.ShiftRepository, resolver portssvc.CallerResolverSvc) portssvc.ShiftSvcFacade {
	return &shiftService{
		BaseService: BaseService{CallerResolver: resolver},
		shiftRepo:   shiftRepo,
	}
}

func (s *shiftService) lockFor(companyID, recorderID string) *sync.Mutex {
	key := companyID + "|" + recorderID
	mu, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// ClockIn opens a shift for the acting user.
func (s *shiftService) ClockIn(ctx context.Context, userID string) (*domain.Shift, error) {
	caller, err := s.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, err
	}

	mu := s.lockFor(caller.CompanyID, caller.UserID)
	mu.Lock()
	defer mu.Unlock()

	shift := domain.Shift{
		ShiftID:      uuid.NewString(),
		CompanyID:    caller.CompanyID,
		RecorderID:   caller.UserID,
		RecorderName: caller.Name,
		ClockIn:      time.Now(),
	}

	if err := s.shiftRepo.OpenShift(ctx, shift); err != nil {
		s.LogError(ctx, err, "Failed to open shift", "company_id", caller.CompanyID, "recorder_id", caller.UserID)
		return nil, err
	}

	s.LogInfo(ctx, "Shift opened", "shift_id", shift.ShiftID, "recorder_id", caller.UserID)
	return &shift, nil
}

// ClockOut closes the acting user's open shift.
func (s *shiftService) ClockOut(ctx context.Context, userID string) (*domain.Shift, error) {
	caller, err := s.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, err
	}

	mu := s.lockFor(caller.CompanyID, caller.UserID)
	mu.Lock()
	defer mu.Unlock()

	shift, err := s.shiftRepo.CloseOpenShift(ctx, caller.CompanyID, caller.UserID, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to close shift", "company_id", caller.CompanyID, "recorder_id", caller.UserID)
		return nil, err
	}
	shift.RecorderName = caller.Name

	s.LogInfo(ctx, "Shift closed", "shift_id", shift.ShiftID, "recorder_id", caller.UserID, "hours", shift.Hours())
	return shift, nil
}

// ListShifts returns the acting user's company shifts for the range, newest
// clock-in first.
func (s *shiftService) ListShifts(ctx context.Context, userID string, start, end string) ([]domain.Shift, error) {
	caller, err := s.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, err
	}

	rng, err := domain.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}

	shifts, err := s.shiftRepo.ListShiftsByRange(ctx, caller.CompanyID, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shifts", "company_id", caller.CompanyID)
		return nil, err
	}
	return shifts, nil
}
