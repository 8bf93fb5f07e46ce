package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
)

// --- Mock CompanyRepository ---

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}
	return company, args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	args := m.Called(ctx, name)
	var company *domain.Company
	if args.Get(0) != nil {
		company = args.Get(0).(*domain.Company)
	}
	return company, args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsersByCompany(ctx context.Context, companyID string) ([]domain.User, error) {
	args := m.Called(ctx, companyID)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

// --- Mock EntryRepository ---

type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) ListEntriesForReport(ctx context.Context, companyID string, rng domain.DateRange) ([]domain.Entry, error) {
	args := m.Called(ctx, companyID, rng)
	var entries []domain.Entry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.Entry)
	}
	return entries, args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, companyID string, rng domain.DateRange) ([]domain.Entry, error) {
	args := m.Called(ctx, companyID, rng)
	var entries []domain.Entry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.Entry)
	}
	return entries, args.Error(1)
}

// --- Mock ExtraExpenditureRepository ---

type MockExtraRepository struct {
	mock.Mock
}

func (m *MockExtraRepository) SaveExtra(ctx context.Context, extra domain.ExtraExpenditure) error {
	args := m.Called(ctx, extra)
	return args.Error(0)
}

func (m *MockExtraRepository) ListExtras(ctx context.Context, companyID string, rng domain.DateRange) ([]domain.ExtraExpenditure, error) {
	args := m.Called(ctx, companyID, rng)
	var extras []domain.ExtraExpenditure
	if args.Get(0) != nil {
		extras = args.Get(0).([]domain.ExtraExpenditure)
	}
	return extras, args.Error(1)
}

// --- Mock ShiftRepository ---

type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) OpenShift(ctx context.Context, shift domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) CloseOpenShift(ctx context.Context, companyID, recorderID string, at time.Time) (*domain.Shift, error) {
	args := m.Called(ctx, companyID, recorderID, at)
	var shift *domain.Shift
	if args.Get(0) != nil {
		shift = args.Get(0).(*domain.Shift)
	}
	return shift, args.Error(1)
}

func (m *MockShiftRepository) FindOpenShift(ctx context.Context, companyID, recorderID string) (*domain.Shift, error) {
	args := m.Called(ctx, companyID, recorderID)
	var shift *domain.Shift
	if args.Get(0) != nil {
		shift = args.Get(0).(*domain.Shift)
	}
	return shift, args.Error(1)
}

func (m *MockShiftRepository) ListShiftsByRange(ctx context.Context, companyID string, rng domain.DateRange) ([]domain.Shift, error) {
	args := m.Called(ctx, companyID, rng)
	var shifts []domain.Shift
	if args.Get(0) != nil {
		shifts = args.Get(0).([]domain.Shift)
	}
	return shifts, args.Error(1)
}

// --- Mock CallerResolverSvc ---

type MockCallerResolver struct {
	mock.Mock
}

func (m *MockCallerResolver) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}
