package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
	"github.com/tallyhq/tally_pro_app/internal/utils/accounting"
)

func TestByCategoryNormalizesAndSorts(t *testing.T) {
	supplies := "Supplies"
	entries := []domain.Entry{
		{Kind: domain.KindIn, Amount: decimal.NewFromInt(30), Date: date(t, "2024-04-01")},
		{Kind: domain.KindOut, Amount: decimal.NewFromInt(10), Date: date(t, "2024-04-02"), Category: &supplies},
	}
	rng := domain.DateRange{Start: "2024-04-01", End: "2024-04-30"}

	report := accounting.ByCategory(entries, rng)
	require.Len(t, report.Rows, 2)

	// "Supplies" < "Uncategorized" in ascending label order.
	assert.Equal(t, "Supplies", report.Rows[0].Label)
	assertDecimal(t, 0, report.Rows[0].TotalIn)
	assertDecimal(t, 10, report.Rows[0].TotalOut)
	assertDecimal(t, -10, report.Rows[0].Profit)

	assert.Equal(t, "Uncategorized", report.Rows[1].Label)
	assertDecimal(t, 30, report.Rows[1].TotalIn)
	assertDecimal(t, 0, report.Rows[1].TotalOut)
	assertDecimal(t, 30, report.Rows[1].Profit)

	assertDecimal(t, 30, report.Totals.In)
	assertDecimal(t, 10, report.Totals.Out)
	assertDecimal(t, 20, report.Holdings)
}

func TestByCategoryRowsPartitionTotals(t *testing.T) {
	food, fuel := "Food", "Fuel"
	entries := []domain.Entry{
		{Kind: domain.KindIn, Amount: decimal.NewFromInt(11), Date: date(t, "2024-04-01"), Category: &food},
		{Kind: domain.KindIn, Amount: decimal.NewFromInt(22), Date: date(t, "2024-04-02"), Category: &fuel},
		{Kind: domain.KindOut, Amount: decimal.NewFromInt(5), Date: date(t, "2024-04-03"), Category: &food},
		{Kind: domain.KindIn, Amount: decimal.NewFromInt(7), Date: date(t, "2024-04-04")},
	}
	report := accounting.ByCategory(entries, domain.DateRange{Start: "2024-04-01", End: "2024-04-30"})

	rowIn, rowOut := decimal.Zero, decimal.Zero
	for _, row := range report.Rows {
		rowIn = rowIn.Add(row.TotalIn)
		rowOut = rowOut.Add(row.TotalOut)
	}
	assert.True(t, rowIn.Equal(report.Totals.In), "row IN sums must equal range totals")
	assert.True(t, rowOut.Equal(report.Totals.Out), "row OUT sums must equal range totals")
}

func TestByEmployeeSortedByName(t *testing.T) {
	entries := []domain.Entry{
		{Kind: domain.KindIn, Amount: decimal.NewFromInt(10), Date: date(t, "2024-04-01"), RecorderID: "u2", RecorderName: "Zoe"},
		{Kind: domain.KindOut, Amount: decimal.NewFromInt(4), Date: date(t, "2024-04-01"), RecorderID: "u1", RecorderName: "Alice"},
		{Kind: domain.KindIn, Amount: decimal.NewFromInt(6), Date: date(t, "2024-04-02"), RecorderID: "u1", RecorderName: "Alice"},
	}
	report := accounting.ByEmployee(entries, domain.DateRange{Start: "2024-04-01", End: "2024-04-30"})

	require.Len(t, report.Rows, 2)
	assert.Equal(t, "Alice", report.Rows[0].Label)
	assertDecimal(t, 6, report.Rows[0].TotalIn)
	assertDecimal(t, 4, report.Rows[0].TotalOut)
	assertDecimal(t, 2, report.Rows[0].Profit)
	assert.Equal(t, "Zoe", report.Rows[1].Label)
	assertDecimal(t, 10, report.Rows[1].TotalIn)
}

func TestBreakdownEmptyEntries(t *testing.T) {
	report := accounting.ByEmployee(nil, domain.DateRange{Start: "2024-04-01", End: "2024-04-30"})
	assert.Empty(t, report.Rows)
	assertDecimal(t, 0, report.Totals.In)
	assertDecimal(t, 0, report.Holdings)
}
