package services

import (
	"context"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
	"github.com/tallyhq/tally_pro_app/internal/dto"
)

// EntrySvcFacade defines cash entry operations.
type EntrySvcFacade interface {
	// CreateEntry records a cash movement for the acting user's company.
	// Rejects kinds outside IN/OUT and negative amounts with
	// apperrors.ErrValidation.
	CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*domain.Entry, error)
	// ListEntries returns the range's entries newest first.
	ListEntries(ctx context.Context, userID string, start, end string) ([]domain.Entry, error)
}

// ExtraExpenditureSvcFacade defines extra expenditure operations.
type ExtraExpenditureSvcFacade interface {
	// CreateExtra records a monthly deduction. Admin only.
	CreateExtra(ctx context.Context, userID string, req dto.CreateExtraRequest) (*domain.ExtraExpenditure, error)
	// ListExtras returns the range's extras ascending by date.
	ListExtras(ctx context.Context, userID string, start, end string) ([]domain.ExtraExpenditure, error)
}
