package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tallyhq/tally_pro_app/internal/apperrors"
	"github.com/tallyhq/tally_pro_app/internal/core/domain"
	portssvc "github.com/tallyhq/tally_pro_app/internal/core/ports/services"
	"github.com/tallyhq/tally_pro_app/internal/dto"
	"github.com/tallyhq/tally_pro_app/internal/handlers"
	"github.com/tallyhq/tally_pro_app/internal/middleware"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Summary(ctx context.Context, userID string, start, end, period string) (*domain.SummaryReport, error) {
	args := m.Called(ctx, userID, start, end, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SummaryReport), args.Error(1)
}

func (m *MockReportingService) ByEmployee(ctx context.Context, userID string, start, end string) (*domain.BreakdownReport, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BreakdownReport), args.Error(1)
}

func (m *MockReportingService) ByCategory(ctx context.Context, userID string, start, end string) (*domain.BreakdownReport, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BreakdownReport), args.Error(1)
}

func (m *MockReportingService) Traffic(ctx context.Context, userID string, start, end string) (domain.DateRange, []domain.TrafficRow, error) {
	args := m.Called(ctx, userID, start, end)
	var rows []domain.TrafficRow
	if args.Get(1) != nil {
		rows = args.Get(1).([]domain.TrafficRow)
	}
	return args.Get(0).(domain.DateRange), rows, args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

type ReportingHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockReportingService *MockReportingService
	jwtSecret            string
}

func (suite *ReportingHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockReportingService = new(MockReportingService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterReportingRoutes(v1, suite.mockReportingService)
}

func (suite *ReportingHandlerTestSuite) TestGetSummary_Success() {
	userID := uuid.NewString()

	expected := &domain.SummaryReport{
		Range:    domain.DateRange{Start: "2024-03-01", End: "2024-03-31"},
		Period:   domain.PeriodWeekly,
		Totals:   domain.RangeTotals{In: decimal.NewFromInt(200), Out: decimal.NewFromInt(50)},
		Holdings: decimal.NewFromInt(150),
		Buckets: []domain.Bucket{
			{Key: "2024-03-04", In: decimal.NewFromInt(200), Out: decimal.NewFromInt(50), Profit: decimal.NewFromInt(150)},
		},
	}

	suite.mockReportingService.On("Summary",
		mock.Anything, userID, "2024-03-01", "2024-03-31", "weekly",
	).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/summary?start=2024-03-01&end=2024-03-31&period=weekly", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SummaryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("weekly", resp.Period)
	suite.Len(resp.Buckets, 1)
	suite.True(resp.Holdings.Equal(decimal.NewFromInt(150)))
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetSummary_InvalidPeriod() {
	userID := uuid.NewString()

	suite.mockReportingService.On("Summary",
		mock.Anything, userID, "", "", "hourly",
	).Return(nil, apperrors.ErrInvalidPeriod).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/summary?period=hourly", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ReportingHandlerTestSuite) TestGetSummary_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/summary", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ReportingHandlerTestSuite) TestGetTraffic_Success() {
	userID := uuid.NewString()

	rng := domain.DateRange{Start: "2024-03-01", End: "2024-03-31"}
	rows := []domain.TrafficRow{
		{Day: "2024-03-04", ShiftCount: 2, Hours: 14.5},
	}

	suite.mockReportingService.On("Traffic",
		mock.Anything, userID, "2024-03-01", "2024-03-31",
	).Return(rng, rows, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/traffic?start=2024-03-01&end=2024-03-31", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TrafficResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Rows, 1)
	suite.Equal(2, resp.Rows[0].ShiftCount)
	suite.InDelta(14.5, resp.Rows[0].Hours, 0.001)
}

func (suite *ReportingHandlerTestSuite) TestGetByCategory_Success() {
	userID := uuid.NewString()

	expected := &domain.BreakdownReport{
		Range:    domain.DateRange{Start: domain.RangeStartMin, End: domain.RangeEndMax},
		Totals:   domain.RangeTotals{In: decimal.NewFromInt(90), Out: decimal.NewFromInt(30)},
		Holdings: decimal.NewFromInt(60),
		Rows: []domain.BreakdownRow{
			{Label: "Supplies", TotalIn: decimal.Zero, TotalOut: decimal.NewFromInt(30), Profit: decimal.NewFromInt(-30)},
			{Label: domain.UncategorizedLabel, TotalIn: decimal.NewFromInt(90), TotalOut: decimal.Zero, Profit: decimal.NewFromInt(90)},
		},
	}

	suite.mockReportingService.On("ByCategory",
		mock.Anything, userID, "", "",
	).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/by-category", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BreakdownResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Rows, 2)
	suite.Equal("Supplies", resp.Rows[0].Label)
}

func TestReportingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
