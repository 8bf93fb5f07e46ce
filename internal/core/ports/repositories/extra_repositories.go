package repositories

import (
	"context"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
)

// ExtraExpenditureRepository defines persistence operations for monthly
// extra expenditures.
type ExtraExpenditureRepository interface {
	SaveExtra(ctx context.Context, extra domain.ExtraExpenditure) error
	// ListExtras returns the company's extras within the inclusive range,
	// ordered ascending by date.
	ListExtras(ctx context.Context, companyID string, rng domain.DateRange) ([]domain.ExtraExpenditure, error)
}
