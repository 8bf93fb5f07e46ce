package repositories

import (
	"context"

	"github.com/tallyhq/tally_pro_app/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	// FindUserByID returns apperrors.ErrNotFound when no user matches.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindUserByEmail matches the lowercased email; apperrors.ErrNotFound when absent.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// ListUsersByCompany returns the company's users, newest first.
	ListUsersByCompany(ctx context.Context, companyID string) ([]domain.User, error)
}
