package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally_pro_app/internal/apperrors"
)

// Period selects the bucketing granularity for summary reports.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod maps a query-string period selector to a Period. An empty
// selector defaults to daily; anything else outside the three supported
// values is rejected with apperrors.ErrInvalidPeriod.
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(s)) {
	case "":
		return PeriodDaily, nil
	case PeriodDaily:
		return PeriodDaily, nil
	case PeriodWeekly:
		return PeriodWeekly, nil
	case PeriodMonthly:
		return PeriodMonthly, nil
	}
	return "", apperrors.ErrInvalidPeriod
}

// Default range bounds applied when the caller omits start/end.
const (
	RangeStartMin = "1900-01-01"
	RangeEndMax   = "2999-12-31"
)

// DateRange is an inclusive [Start, End] calendar date range in ISO form.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewDateRange normalizes raw start/end inputs into a DateRange. Inputs are
// truncated to their first 10 characters so timestamp-valued inputs are
// tolerated; empty bounds fall back to the open defaults. A range whose end
// precedes its start is rejected with apperrors.ErrInvalidRange.
func NewDateRange(start, end string) (DateRange, error) {
	s := truncateDate(start, RangeStartMin)
	e := truncateDate(end, RangeEndMax)
	if e < s {
		return DateRange{}, apperrors.ErrInvalidRange
	}
	return DateRange{Start: s, End: e}, nil
}

func truncateDate(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	if len(s) > 10 {
		s = s[:10]
	}
	return s
}

// Bucket is a time-windowed aggregation of entries. Extra is only set for
// monthly buckets; daily and weekly buckets never carry it.
type Bucket struct {
	Key    string           `json:"key"` // Date, week Monday, or YYYY-MM month
	In     decimal.Decimal  `json:"in"`
	Out    decimal.Decimal  `json:"out"`
	Extra  *decimal.Decimal `json:"extra,omitempty"`
	Profit decimal.Decimal  `json:"profit"` // In - Out, minus Extra for monthly buckets
}

// RangeTotals are the unfiltered IN/OUT sums over a whole range.
type RangeTotals struct {
	In  decimal.Decimal `json:"in"`
	Out decimal.Decimal `json:"out"`
}

// SummaryReport is the bucketed summary for a range. Holdings is the sum of
// bucket profits: In minus Out, additionally reduced by extras for monthly
// periods.
type SummaryReport struct {
	Range    DateRange       `json:"range"`
	Period   Period          `json:"period"`
	Totals   RangeTotals     `json:"totals"`
	Holdings decimal.Decimal `json:"holdings"`
	Buckets  []Bucket        `json:"buckets"`
}

// BreakdownRow is one by-employee or by-category aggregation row.
type BreakdownRow struct {
	Label    string          `json:"label"`
	TotalIn  decimal.Decimal `json:"totalIn"`
	TotalOut decimal.Decimal `json:"totalOut"`
	Profit   decimal.Decimal `json:"profit"`
}

// BreakdownReport groups a range's entries under labels (employee names or
// category labels). Totals always come from the full entry set, never from
// re-summing rows, though the two must agree.
type BreakdownReport struct {
	Range    DateRange       `json:"range"`
	Totals   RangeTotals     `json:"totals"`
	Holdings decimal.Decimal `json:"holdings"` // Plain In - Out; breakdowns never consider extras
	Rows     []BreakdownRow  `json:"rows"`
}

// TrafficRow is the per-day shift activity aggregate.
type TrafficRow struct {
	Day        string  `json:"day"`
	ShiftCount int     `json:"shiftCount"`
	Hours      float64 `json:"hours"` // Sum over closed shifts; open shifts contribute 0
}

// DateKey formats a calendar timestamp as its ISO date key.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
