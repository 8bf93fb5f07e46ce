package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tallyhq/tally_pro_app/internal/apperrors"
	"github.com/tallyhq/tally_pro_app/internal/core/domain"
	portssvc "github.com/tallyhq/tally_pro_app/internal/core/ports/services"
	"github.com/tallyhq/tally_pro_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	CallerResolver portssvc.CallerResolverSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// ResolveCaller loads the acting user's record. Tenant scope and role are
// always derived from it, never from handler input.
func (s *BaseService) ResolveCaller(ctx context.Context, userID string) (*domain.User, error) {
	if s.CallerResolver == nil {
		return nil, fmt.Errorf("caller resolver not configured")
	}
	caller, err := s.CallerResolver.GetUserByID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve acting user", slog.String("user_id", userID))
		return nil, err
	}
	return caller, nil
}

// ResolveAdminCaller loads the acting user and rejects non-admins with
// apperrors.ErrForbidden.
func (s *BaseService) ResolveAdminCaller(ctx context.Context, userID string) (*domain.User, error) {
	caller, err := s.ResolveCaller(ctx, userID)
	if err != nil {
		return nil, err
	}
	if caller.Role != domain.RoleAdmin {
		s.LogDebug(ctx, "Non-admin user attempted an admin operation", slog.String("user_id", userID))
		return nil, apperrors.ErrForbidden
	}
	return caller, nil
}
