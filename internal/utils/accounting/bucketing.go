// Package accounting holds the pure aggregation engine behind the ledger
// reports: time bucketing, by-employee/by-category breakdowns, and shift
// traffic. Everything here operates on already-fetched, tenant-scoped rows
// and performs no I/O, so the same inputs always produce the same report.
package accounting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally_pro_app/internal/apperrors"
	"github.com/tallyhq/tally_pro_app/internal/core/domain"
)

// WeekStart returns the Monday of the ISO week containing t.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7 // Monday-indexed weekday
	return t.AddDate(0, 0, -offset)
}

// MonthKey returns the YYYY-MM key of t.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// BucketKey returns the grouping key an entry date falls into for period.
func BucketKey(date time.Time, period domain.Period) (string, error) {
	switch period {
	case domain.PeriodDaily:
		return domain.DateKey(date), nil
	case domain.PeriodWeekly:
		return domain.DateKey(WeekStart(date)), nil
	case domain.PeriodMonthly:
		return MonthKey(date), nil
	}
	return "", apperrors.ErrInvalidPeriod
}

// Totals sums entry amounts by kind over the full set. Entries with a kind
// outside IN/OUT are counted as zero rather than rejected; reports are
// fail-open views.
func Totals(entries []domain.Entry) domain.RangeTotals {
	totals := domain.RangeTotals{In: decimal.Zero, Out: decimal.Zero}
	for _, e := range entries {
		switch e.Kind {
		case domain.KindIn:
			totals.In = totals.In.Add(e.Amount)
		case domain.KindOut:
			totals.Out = totals.Out.Add(e.Amount)
		}
	}
	return totals
}

// ExtrasByMonth sums extra expenditures under their YYYY-MM key.
func ExtrasByMonth(extras []domain.ExtraExpenditure) map[string]decimal.Decimal {
	byMonth := make(map[string]decimal.Decimal, len(extras))
	for _, x := range extras {
		month := MonthKey(x.Date)
		byMonth[month] = byMonth[month].Add(x.Amount)
	}
	return byMonth
}

type bucketAcc struct {
	in  decimal.Decimal
	out decimal.Decimal
}

// BucketEntries groups entries into buckets for the given period, ordered
// ascending by key. ISO date and YYYY-MM keys sort correctly as strings, so
// ordering does not depend on the input scan order. For monthly periods
// every bucket carries the month's extra-expenditure total (zero if none)
// and its profit is reduced by it; daily and weekly buckets never see
// extras. Months with extras but no entries produce no bucket: buckets are
// sparse, never zero-filled.
func BucketEntries(entries []domain.Entry, period domain.Period, extras []domain.ExtraExpenditure) ([]domain.Bucket, error) {
	groups := make(map[string]*bucketAcc)
	for _, e := range entries {
		key, err := BucketKey(e.Date, period)
		if err != nil {
			return nil, err
		}
		acc, ok := groups[key]
		if !ok {
			acc = &bucketAcc{in: decimal.Zero, out: decimal.Zero}
			groups[key] = acc
		}
		switch e.Kind {
		case domain.KindIn:
			acc.in = acc.in.Add(e.Amount)
		case domain.KindOut:
			acc.out = acc.out.Add(e.Amount)
		}
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var extrasByMonth map[string]decimal.Decimal
	if period == domain.PeriodMonthly {
		extrasByMonth = ExtrasByMonth(extras)
	}

	buckets := make([]domain.Bucket, 0, len(keys))
	for _, key := range keys {
		acc := groups[key]
		bucket := domain.Bucket{
			Key:    key,
			In:     acc.in,
			Out:    acc.out,
			Profit: acc.in.Sub(acc.out),
		}
		if period == domain.PeriodMonthly {
			extra := extrasByMonth[key] // zero value when the month has no extras
			bucket.Extra = &extra
			bucket.Profit = bucket.Profit.Sub(extra)
		}
		buckets = append(buckets, bucket)
	}
	return buckets, nil
}

// Summarize builds the full summary report for a range: unfiltered totals,
// ordered buckets, and holdings computed as the sum of bucket profits. For
// daily and weekly periods that equals totals.In - totals.Out; for monthly
// periods it is additionally reduced by the extras of each bucketed month.
func Summarize(entries []domain.Entry, extras []domain.ExtraExpenditure, period domain.Period, rng domain.DateRange) (*domain.SummaryReport, error) {
	buckets, err := BucketEntries(entries, period, extras)
	if err != nil {
		return nil, err
	}

	holdings := decimal.Zero
	for _, b := range buckets {
		holdings = holdings.Add(b.Profit)
	}

	return &domain.SummaryReport{
		Range:    rng,
		Period:   period,
		Totals:   Totals(entries),
		Holdings: holdings,
		Buckets:  buckets,
	}, nil
}
