package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally_pro_app/internal/apperrors"
	"github.com/tallyhq/tally_pro_app/internal/core/domain"
	portssvc "github.com/tallyhq/tally_pro_app/internal/core/ports/services"
	"github.com/tallyhq/tally_pro_app/internal/core/services"
)

func newShiftSvc() (*MockShiftRepository, *MockCallerResolver, portssvc.ShiftSvcFacade) {
	repo := new(MockShiftRepository)
	resolver := new(MockCallerResolver)
	return repo, resolver, services.NewShiftService(repo, resolver)
}

func shiftTestCaller() *domain.User {
	return &domain.User{UserID: "u1", CompanyID: "c1", Name: "Ada", Role: domain.RoleEmployee}
}

func TestClockIn_OpensShift(t *testing.T) {
	repo, resolver, svc := newShiftSvc()
	resolver.On("GetUserByID", mock.Anything, "u1").Return(shiftTestCaller(), nil)
	repo.On("OpenShift", mock.Anything, mock.MatchedBy(func(s domain.Shift) bool {
		return s.CompanyID == "c1" && s.RecorderID == "u1" && s.ClockOut == nil
	})).Return(nil)

	shift, err := svc.ClockIn(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, shift.Open())
	assert.Equal(t, "Ada", shift.RecorderName)
	repo.AssertExpectations(t)
}

func TestClockIn_SecondOpenShiftRejected(t *testing.T) {
	repo, resolver, svc := newShiftSvc()
	resolver.On("GetUserByID", mock.Anything, "u1").Return(shiftTestCaller(), nil)
	repo.On("OpenShift", mock.Anything, mock.AnythingOfType("domain.Shift")).Return(apperrors.ErrOpenShiftExists)

	_, err := svc.ClockIn(context.Background(), "u1")
	assert.ErrorIs(t, err, apperrors.ErrOpenShiftExists)
}

func TestClockOut_ClosesOpenShift(t *testing.T) {
	repo, resolver, svc := newShiftSvc()
	resolver.On("GetUserByID", mock.Anything, "u1").Return(shiftTestCaller(), nil)

	clockIn := time.Now().Add(-8 * time.Hour)
	repo.On("CloseOpenShift", mock.Anything, "c1", "u1", mock.AnythingOfType("time.Time")).
		Return(&domain.Shift{
			ShiftID:    "s1",
			CompanyID:  "c1",
			RecorderID: "u1",
			ClockIn:    clockIn,
			ClockOut:   timePtr(clockIn.Add(8 * time.Hour)),
		}, nil)

	shift, err := svc.ClockOut(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, shift.Open())
	assert.InDelta(t, 8.0, shift.Hours(), 0.001)
	assert.Equal(t, "Ada", shift.RecorderName)
}

func TestClockOut_NoOpenShift(t *testing.T) {
	repo, resolver, svc := newShiftSvc()
	resolver.On("GetUserByID", mock.Anything, "u1").Return(shiftTestCaller(), nil)
	repo.On("CloseOpenShift", mock.Anything, "c1", "u1", mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNoOpenShift)

	_, err := svc.ClockOut(context.Background(), "u1")
	assert.ErrorIs(t, err, apperrors.ErrNoOpenShift)
}

func TestListShifts_ScopedToCallerCompany(t *testing.T) {
	repo, resolver, svc := newShiftSvc()
	resolver.On("GetUserByID", mock.Anything, "u1").Return(shiftTestCaller(), nil)
	repo.On("ListShiftsByRange", mock.Anything, "c1", domain.DateRange{
		Start: "2024-03-01",
		End:   "2024-03-31",
	}).Return([]domain.Shift{{ShiftID: "s1"}}, nil)

	shifts, err := svc.ListShifts(context.Background(), "u1", "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Len(t, shifts, 1)
	repo.AssertExpectations(t)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
