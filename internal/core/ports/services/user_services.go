package services

import (
	"context"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
	"github.com/tallyhq/tally_pro_app/internal/dto"
)

// UserSvcFacade defines user management operations. All tenant scoping is
// derived from the acting user's own company; callers never pass a company
// ID directly.
type UserSvcFacade interface {
	// Register creates the company (or joins an existing one by name) and
	// its first admin user. Returns apperrors.ErrDuplicate when the email is
	// already in use.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// CreateUser adds an employee to the creator's company. Admin only:
	// apperrors.ErrForbidden otherwise.
	CreateUser(ctx context.Context, creatorID string, req dto.CreateUserRequest) (*domain.User, error)
	// ListUsers returns the requester's company users. Admin only.
	ListUsers(ctx context.Context, requesterID string) ([]domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// CallerResolverSvc resolves an authenticated user ID into its full user
// record. Services use it to derive tenant scope and role for every call.
type CallerResolverSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
