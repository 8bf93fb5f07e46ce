package accounting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally_pro_app/internal/apperrors"
	"github.com/tallyhq/tally_pro_app/internal/core/domain"
	"github.com/tallyhq/tally_pro_app/internal/utils/accounting"
)

func date(t *testing.T, iso string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", iso)
	require.NoError(t, err)
	return d
}

func entry(t *testing.T, kind domain.EntryKind, amount int64, iso string) domain.Entry {
	t.Helper()
	return domain.Entry{
		Kind:   kind,
		Amount: decimal.NewFromInt(amount),
		Date:   date(t, iso),
	}
}

func extra(t *testing.T, amount int64, iso string) domain.ExtraExpenditure {
	t.Helper()
	return domain.ExtraExpenditure{Amount: decimal.NewFromInt(amount), Date: date(t, iso)}
}

func assertDecimal(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.NewFromInt(want)), "want %d, got %s", want, got)
}

func TestWeekStartIsAlwaysMonday(t *testing.T) {
	for _, iso := range []string{
		"2024-01-01", // a Monday
		"2024-01-02",
		"2024-01-07", // a Sunday
		"2024-02-29",
		"2023-12-31",
	} {
		d := date(t, iso)
		monday := accounting.WeekStart(d)
		assert.Equal(t, time.Monday, monday.Weekday(), "week start of %s", iso)
		assert.False(t, monday.After(d), "week start of %s must not be after the date", iso)
	}
}

func TestBucketEntriesWeekly(t *testing.T) {
	entries := []domain.Entry{
		entry(t, domain.KindIn, 100, "2024-01-01"),
		entry(t, domain.KindOut, 40, "2024-01-02"),
		entry(t, domain.KindIn, 50, "2024-01-08"),
	}

	buckets, err := accounting.BucketEntries(entries, domain.PeriodWeekly, nil)
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	assert.Equal(t, "2024-01-01", buckets[0].Key)
	assertDecimal(t, 100, buckets[0].In)
	assertDecimal(t, 40, buckets[0].Out)
	assertDecimal(t, 60, buckets[0].Profit)
	assert.Nil(t, buckets[0].Extra)

	assert.Equal(t, "2024-01-08", buckets[1].Key)
	assertDecimal(t, 50, buckets[1].In)
	assertDecimal(t, 0, buckets[1].Out)
	assertDecimal(t, 50, buckets[1].Profit)
	assert.Nil(t, buckets[1].Extra)
}

func TestBucketEntriesMonthlyWithExtras(t *testing.T) {
	entries := []domain.Entry{
		entry(t, domain.KindIn, 100, "2024-01-01"),
		entry(t, domain.KindOut, 40, "2024-01-02"),
		entry(t, domain.KindIn, 50, "2024-01-08"),
	}
	extras := []domain.ExtraExpenditure{extra(t, 20, "2024-01-15")}

	buckets, err := accounting.BucketEntries(entries, domain.PeriodMonthly, extras)
	require.NoError(t, err)
	require.Len(t, buckets, 1)

	b := buckets[0]
	assert.Equal(t, "2024-01", b.Key)
	assertDecimal(t, 150, b.In)
	assertDecimal(t, 40, b.Out)
	require.NotNil(t, b.Extra)
	assertDecimal(t, 20, *b.Extra)
	assertDecimal(t, 90, b.Profit)
}

func TestBucketEntriesDailyExtrasIgnored(t *testing.T) {
	entries := []domain.Entry{entry(t, domain.KindIn, 10, "2024-03-05")}
	extras := []domain.ExtraExpenditure{extra(t, 5, "2024-03-05")}

	for _, period := range []domain.Period{domain.PeriodDaily, domain.PeriodWeekly} {
		buckets, err := accounting.BucketEntries(entries, period, extras)
		require.NoError(t, err)
		require.Len(t, buckets, 1)
		assert.Nil(t, buckets[0].Extra, "period %s must not carry extras", period)
		assertDecimal(t, 10, buckets[0].Profit)
	}
}

func TestBucketEntriesDailySortedRegardlessOfInputOrder(t *testing.T) {
	entries := []domain.Entry{
		entry(t, domain.KindIn, 1, "2024-05-03"),
		entry(t, domain.KindIn, 1, "2024-05-01"),
		entry(t, domain.KindIn, 1, "2024-05-02"),
	}

	buckets, err := accounting.BucketEntries(entries, domain.PeriodDaily, nil)
	require.NoError(t, err)
	require.Len(t, buckets, 3)
	assert.Equal(t, "2024-05-01", buckets[0].Key)
	assert.Equal(t, "2024-05-02", buckets[1].Key)
	assert.Equal(t, "2024-05-03", buckets[2].Key)
}

func TestBucketEntriesConservesAmounts(t *testing.T) {
	entries := []domain.Entry{
		entry(t, domain.KindIn, 100, "2024-01-01"),
		entry(t, domain.KindIn, 25, "2024-01-01"),
		entry(t, domain.KindOut, 40, "2024-01-15"),
		entry(t, domain.KindIn, 7, "2024-02-03"),
		entry(t, domain.KindOut, 13, "2024-03-09"),
	}

	for _, period := range []domain.Period{domain.PeriodDaily, domain.PeriodWeekly, domain.PeriodMonthly} {
		buckets, err := accounting.BucketEntries(entries, period, nil)
		require.NoError(t, err)

		in, out := decimal.Zero, decimal.Zero
		for _, b := range buckets {
			in = in.Add(b.In)
			out = out.Add(b.Out)
		}
		totals := accounting.Totals(entries)
		assert.True(t, in.Equal(totals.In), "period %s loses or duplicates IN amounts", period)
		assert.True(t, out.Equal(totals.Out), "period %s loses or duplicates OUT amounts", period)
	}
}

func TestMonthlyProfitMatchesDailyMinusExtras(t *testing.T) {
	entries := []domain.Entry{
		entry(t, domain.KindIn, 100, "2024-01-01"),
		entry(t, domain.KindOut, 30, "2024-01-10"),
		entry(t, domain.KindIn, 45, "2024-01-28"),
	}
	extras := []domain.ExtraExpenditure{
		extra(t, 10, "2024-01-05"),
		extra(t, 15, "2024-01-20"),
	}

	daily, err := accounting.BucketEntries(entries, domain.PeriodDaily, nil)
	require.NoError(t, err)
	dailyProfit := decimal.Zero
	for _, b := range daily {
		dailyProfit = dailyProfit.Add(b.Profit)
	}

	monthly, err := accounting.BucketEntries(entries, domain.PeriodMonthly, extras)
	require.NoError(t, err)
	require.Len(t, monthly, 1)
	assert.True(t, monthly[0].Profit.Equal(dailyProfit.Sub(decimal.NewFromInt(25))))
}

func TestBucketEntriesEmptyAndSparse(t *testing.T) {
	buckets, err := accounting.BucketEntries(nil, domain.PeriodDaily, nil)
	require.NoError(t, err)
	assert.Empty(t, buckets)

	// A month with only extras and no entries produces no bucket.
	buckets, err = accounting.BucketEntries(nil, domain.PeriodMonthly, []domain.ExtraExpenditure{extra(t, 99, "2024-06-01")})
	require.NoError(t, err)
	assert.Empty(t, buckets)
}

func TestBucketEntriesInvalidPeriod(t *testing.T) {
	_, err := accounting.BucketEntries(nil, domain.Period("yearly"), nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPeriod)
}

func TestSummarizeHoldings(t *testing.T) {
	rng := domain.DateRange{Start: "2024-01-01", End: "2024-01-31"}
	entries := []domain.Entry{
		entry(t, domain.KindIn, 100, "2024-01-01"),
		entry(t, domain.KindOut, 40, "2024-01-02"),
		entry(t, domain.KindIn, 50, "2024-01-08"),
	}
	extras := []domain.ExtraExpenditure{extra(t, 20, "2024-01-15")}

	weekly, err := accounting.Summarize(entries, extras, domain.PeriodWeekly, rng)
	require.NoError(t, err)
	assertDecimal(t, 150, weekly.Totals.In)
	assertDecimal(t, 40, weekly.Totals.Out)
	assertDecimal(t, 110, weekly.Holdings)

	monthly, err := accounting.Summarize(entries, extras, domain.PeriodMonthly, rng)
	require.NoError(t, err)
	assertDecimal(t, 150, monthly.Totals.In)
	assertDecimal(t, 40, monthly.Totals.Out)
	assertDecimal(t, 90, monthly.Holdings)
}

func TestSummarizeIsIdempotent(t *testing.T) {
	rng := domain.DateRange{Start: "2024-01-01", End: "2024-12-31"}
	entries := []domain.Entry{
		entry(t, domain.KindIn, 100, "2024-01-01"),
		entry(t, domain.KindOut, 40, "2024-02-02"),
	}
	extras := []domain.ExtraExpenditure{extra(t, 5, "2024-01-10")}

	first, err := accounting.Summarize(entries, extras, domain.PeriodMonthly, rng)
	require.NoError(t, err)
	second, err := accounting.Summarize(entries, extras, domain.PeriodMonthly, rng)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
