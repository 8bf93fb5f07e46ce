package repositories

import (
	"context"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
)

// EntryRepository defines persistence operations for cash entries. Entries
// are append-only; there is no update or delete.
type EntryRepository interface {
	SaveEntry(ctx context.Context, entry domain.Entry) error
	// ListEntriesForReport returns the company's entries within the inclusive
	// range, ordered ascending by (date, recorded_at) as the aggregation
	// engine expects, with recorder names resolved.
	ListEntriesForReport(ctx context.Context, companyID string, rng domain.DateRange) ([]domain.Entry, error)
	// ListEntries returns the same rows ordered descending by
	// (date, recorded_at) for display listings.
	ListEntries(ctx context.Context, companyID string, rng domain.DateRange) ([]domain.Entry, error)
}
