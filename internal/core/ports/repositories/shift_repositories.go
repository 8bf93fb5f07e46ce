package repositories

import (
	"context"
	"time"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
)

// ShiftRepository defines persistence operations for shifts. The clock
// transitions are single conditional statements so that at most one open
// shift can ever exist per (company, recorder), even without the service
// level serialization.
type ShiftRepository interface {
	// OpenShift inserts the shift unless the recorder already has an open
	// one, in which case it returns apperrors.ErrOpenShiftExists.
	OpenShift(ctx context.Context, shift domain.Shift) error
	// CloseOpenShift stamps clock_out on the recorder's open shift and
	// returns it; apperrors.ErrNoOpenShift when there is none.
	CloseOpenShift(ctx context.Context, companyID, recorderID string, at time.Time) (*domain.Shift, error)
	// FindOpenShift returns apperrors.ErrNotFound when no shift is open.
	FindOpenShift(ctx context.Context, companyID, recorderID string) (*domain.Shift, error)
	// ListShiftsByRange returns shifts whose clock-in date falls in the
	// inclusive range, ordered by clock_in descending, with recorder names.
	ListShiftsByRange(ctx context.Context, companyID string, rng domain.DateRange) ([]domain.Shift, error)
}
