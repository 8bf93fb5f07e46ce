package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally_pro_app/internal/apperrors"
	"github.com/tallyhq/tally_pro_app/internal/core/domain"
	portssvc "github.com/tallyhq/tally_pro_app/internal/core/ports/services"
	"github.com/tallyhq/tally_pro_app/internal/core/services"
)

func newReportingSvc() (*MockEntryRepository, *MockExtraRepository, *MockShiftRepository, *MockCallerResolver, portssvc.ReportingSvcFacade) {
	entryRepo := new(MockEntryRepository)
	extraRepo := new(MockExtraRepository)
	shiftRepo := new(MockShiftRepository)
	resolver := new(MockCallerResolver)
	svc := services.NewReportingService(entryRepo, extraRepo, shiftRepo, resolver)
	return entryRepo, extraRepo, shiftRepo, resolver, svc
}

func reportTestCaller() *domain.User {
	return &domain.User{UserID: "u1", CompanyID: "c1", Name: "Ada", Role: domain.RoleAdmin}
}

func reportDate(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func reportEntry(day string, kind domain.EntryKind, amount int64, recorder string, category *string) domain.Entry {
	return domain.Entry{
		CompanyID:    "c1",
		RecorderID:   recorder,
		RecorderName: recorder,
		Kind:         kind,
		Amount:       decimal.NewFromInt(amount),
		Category:     category,
		Date:         reportDate(day),
	}
}

func TestSummary_DailyDefault(t *testing.T) {
	entryRepo, extraRepo, _, resolver, svc := newReportingSvc()
	resolver.On("GetUserByID", mock.Anything, "u1").Return(reportTestCaller(), nil)
	entryRepo.On("ListEntriesForReport", mock.Anything, "c1", mock.AnythingOfType("domain.DateRange")).
		Return([]domain.Entry{
			reportEntry("2024-03-04", domain.KindIn, 200, "ada", nil),
			reportEntry("2024-03-04", domain.KindOut, 50, "ada", nil),
			reportEntry("2024-03-05", domain.KindIn, 100, "bob", nil),
		}, nil)

	report, err := svc.Summary(context.Background(), "u1", "2024-03-01", "2024-03-31", "")
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodDaily, report.Period)
	require.Len(t, report.Buckets, 2)
	assert.Equal(t, "2024-03-04", report.Buckets[0].Key)
	assert.True(t, report.Buckets[0].Profit.Equal(decimal.NewFromInt(150)))
	assert.True(t, report.Holdings.Equal(decimal.NewFromInt(250)))

	// Daily summaries never touch the extras repository.
	extraRepo.AssertNotCalled(t, "ListExtras", mock.Anything, mock.Anything, mock.Anything)
}

func TestSummary_MonthlyAppliesExtras(t *testing.T) {
	entryRepo, extraRepo, _, resolver, svc := newReportingSvc()
	resolver.On("GetUserByID", mock.Anything, "u1").Return(reportTestCaller(), nil)
	entryRepo.On("ListEntriesForReport", mock.Anything, "c1", mock.AnythingOfType("domain.DateRange")).
		Return([]domain.Entry{
			reportEntry("2024-03-04", domain.KindIn, 300, "ada", nil),
		}, nil)
	extraRepo.On("ListExtras", mock.Anything, "c1", mock.AnythingOfType("domain.DateRange")).
		Return([]domain.ExtraExpenditure{
			{CompanyID: "c1", Date: reportDate("2024-03-20"), Amount: decimal.NewFromInt(40)},
		}, nil)

	report, err := svc.Summary(context.Background(), "u1", "2024-03-01", "2024-03-31", "monthly")
	require.NoError(t, err)
	require.Len(t, report.Buckets, 1)
	assert.Equal(t, "2024-03", report.Buckets[0].Key)
	require.NotNil(t, report.Buckets[0].Extra)
	assert.True(t, report.Buckets[0].Extra.Equal(decimal.NewFromInt(40)))
	assert.True(t, report.Buckets[0].Profit.Equal(decimal.NewFromInt(260)))
	assert.True(t, report.Holdings.Equal(decimal.NewFromInt(260)))
}

func TestSummary_InvalidPeriodRejected(t *testing.T) {
	_, _, _, resolver, svc := newReportingSvc()
	resolver.On("GetUserByID", mock.Anything, "u1").Return(reportTestCaller(), nil)

	_, err := svc.Summary(context.Background(), "u1", "", "", "hourly")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPeriod)
}

func TestByCategory_UncategorizedLabel(t *testing.T) {
	entryRepo, _, _, resolver, svc := newReportingSvc()
	resolver.On("GetUserByID", mock.Anything, "u1").Return(reportTestCaller(), nil)
	supplies := "Supplies"
	entryRepo.On("ListEntriesForReport", mock.Anything, "c1", mock.AnythingOfType("domain.DateRange")).
		Return([]domain.Entry{
			reportEntry("2024-03-04", domain.KindOut, 30, "ada", &supplies),
			reportEntry("2024-03-05", domain.KindIn, 90, "ada", nil),
		}, nil)

	report, err := svc.ByCategory(context.Background(), "u1", "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, "Supplies", report.Rows[0].Label)
	assert.Equal(t, domain.UncategorizedLabel, report.Rows[1].Label)
}

func TestTraffic_ReturnsRangeAndRows(t *testing.T) {
	_, _, shiftRepo, resolver, svc := newReportingSvc()
	resolver.On("GetUserByID", mock.Anything, "u1").Return(reportTestCaller(), nil)

	clockIn := reportDate("2024-03-04").Add(9 * time.Hour)
	clockOut := clockIn.Add(8 * time.Hour)
	shiftRepo.On("ListShiftsByRange", mock.Anything, "c1", mock.AnythingOfType("domain.DateRange")).
		Return([]domain.Shift{
			{ShiftID: "s1", CompanyID: "c1", RecorderID: "u1", ClockIn: clockIn, ClockOut: &clockOut},
		}, nil)

	rng, rows, err := svc.Traffic(context.Background(), "u1", "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", rng.Start)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-03-04", rows[0].Day)
	assert.Equal(t, 1, rows[0].ShiftCount)
	assert.InDelta(t, 8.0, rows[0].Hours, 0.001)
}

func TestSummary_SameSnapshotSameReport(t *testing.T) {
	entryRepo, _, _, resolver, svc := newReportingSvc()
	resolver.On("GetUserByID", mock.Anything, "u1").Return(reportTestCaller(), nil)
	entryRepo.On("ListEntriesForReport", mock.Anything, "c1", mock.AnythingOfType("domain.DateRange")).
		Return([]domain.Entry{
			reportEntry("2024-03-04", domain.KindIn, 200, "ada", nil),
			reportEntry("2024-03-11", domain.KindOut, 70, "bob", nil),
		}, nil)

	first, err := svc.Summary(context.Background(), "u1", "2024-03-01", "2024-03-31", "weekly")
	require.NoError(t, err)
	second, err := svc.Summary(context.Background(), "u1", "2024-03-01", "2024-03-31", "weekly")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
