package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tallyhq/tally_pro_app/internal/apperrors"
	"github.com/tallyhq/tally_pro_app/internal/core/domain"
	portsrepo "github.com/tallyhq/tally_pro_app/internal/core/ports/repositories"
	portssvc "github.com/tallyhq/tally_pro_app/internal/core/ports/services"
	"github.com/tallyhq/tally_pro_app/internal/dto"
	"github.com/tallyhq/tally_pro_app/internal/utils"
)

// userService provides user management operations.
type userService struct {
	BaseService
	userRepo    portsrepo.UserRepository
	companyRepo portsrepo.CompanyRepository
}

// NewUserService creates a new user service instance.
func NewUserService(userRepo portsrepo.UserRepository, companyRepo portsrepo.CompanyRepository) portssvc.UserSvcFacade {
	svc := &userService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
	}
	svc.CallerResolver = svc
	return svc
}

// Register creates the first account for a company. When no company with the
// given name exists yet, the company is created and the user becomes its
// admin; otherwise the user joins the existing company as an employee.
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrDuplicate
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check email uniqueness during registration")
		return nil, err
	}

	now := time.Now()
	role := domain.RoleEmployee

	company, err := s.companyRepo.FindCompanyByName(ctx, strings.TrimSpace(req.CompanyName))
	if errors.Is(err, apperrors.ErrNotFound) {
		newCompany := domain.Company{
			CompanyID: uuid.NewString(),
			Name:      strings.TrimSpace(req.CompanyName),
			Email:     strings.ToLower(strings.TrimSpace(req.CompanyEmail)),
			Phone:     strings.TrimSpace(req.CompanyPhone),
		}
		newCompany.CreatedAt = now
		newCompany.LastUpdatedAt = now
		if err := s.companyRepo.SaveCompany(ctx, newCompany); err != nil {
			s.LogError(ctx, err, "Failed to create company during registration")
			return nil, err
		}
		company = &newCompany
		// The founding user administers the company.
		role = domain.RoleAdmin
		s.LogInfo(ctx, "Company created", "company_id", company.CompanyID, "name", company.Name)
	} else if err != nil {
		s.LogError(ctx, err, "Failed to look up company during registration")
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password during registration")
		return nil, err
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		CompanyID:    company.CompanyID,
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	user.CreatedAt = now
	user.CreatedBy = user.UserID
	user.LastUpdatedAt = now
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user during registration")
		return nil, err
	}

	s.LogInfo(ctx, "User registered", "user_id", user.UserID, "company_id", user.CompanyID, "role", string(user.Role))
	return &user, nil
}

// CreateUser adds an employee account to the creator's company.
func (s *userService) CreateUser(ctx context.Context, creatorID string, req dto.CreateUserRequest) (*domain.User, error) {
	creator, err := s.ResolveAdminCaller(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrDuplicate
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check email uniqueness")
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		CompanyID:    creator.CompanyID,
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
	}
	user.CreatedAt = now
	user.CreatedBy = creator.UserID
	user.LastUpdatedAt = now
	user.LastUpdatedBy = creator.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user")
		return nil, err
	}

	s.LogInfo(ctx, "Employee created", "user_id", user.UserID, "company_id", user.CompanyID, "created_by", creator.UserID)
	return &user, nil
}

// ListUsers returns all users of the requester's company.
func (s *userService) ListUsers(ctx context.Context, requesterID string) ([]domain.User, error) {
	requester, err := s.ResolveAdminCaller(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListUsersByCompany(ctx, requester.CompanyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list company users", "company_id", requester.CompanyID)
		return nil, err
	}
	return users, nil
}

// GetUserByID retrieves a user by their ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// GetUserByEmail retrieves a user by their lowercased email.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}
