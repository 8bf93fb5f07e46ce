package services

import (
	"context"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
)

// ReportingSvcFacade defines the derived report operations. All reports are
// pure functions of the fetched snapshot: running one twice over unchanged
// data yields identical output.
type ReportingSvcFacade interface {
	// Summary buckets the range's entries by the given period selector
	// (daily when empty) and applies extra expenditures for monthly buckets.
	Summary(ctx context.Context, userID string, start, end, period string) (*domain.SummaryReport, error)
	// ByEmployee breaks the range down per recorder display name.
	ByEmployee(ctx context.Context, userID string, start, end string) (*domain.BreakdownReport, error)
	// ByCategory breaks the range down per category label.
	ByCategory(ctx context.Context, userID string, start, end string) (*domain.BreakdownReport, error)
	// Traffic returns per-day shift counts and hours for the range.
	Traffic(ctx context.Context, userID string, start, end string) (domain.DateRange, []domain.TrafficRow, error)
}
