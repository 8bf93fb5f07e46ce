package services

import (
	"context"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
)

// ShiftSvcFacade defines shift clock operations. Clock transitions are
// serialized per (company, recorder); see the shift service.
type ShiftSvcFacade interface {
	// ClockIn opens a shift for the acting user. Returns
	// apperrors.ErrOpenShiftExists when one is already open.
	ClockIn(ctx context.Context, userID string) (*domain.Shift, error)
	// ClockOut closes the acting user's open shift. Returns
	// apperrors.ErrNoOpenShift when there is none.
	ClockOut(ctx context.Context, userID string) (*domain.Shift, error)
	// ListShifts returns the range's shifts, clock-in descending, with
	// recorder display names resolved.
	ListShifts(ctx context.Context, userID string, start, end string) ([]domain.Shift, error)
}
