package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	now func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Actor returns the authenticated caller, or the system actor.
func (s *BaseService) Actor(ctx context.Context) string {
	if userID, ok := middleware.GetUserIDFromCtx(ctx); ok {
		return userID
	}
	return domain.SystemActor
}

// Now returns the service clock in UTC.
func (s *BaseService) Now() time.Time {
	if s.now != nil {
		return s.now().UTC()
	}
	return time.Now().UTC()
}
