package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/ap_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/ap_reconciliation_app/internal/middleware"
	"github.com/SscSPs/ap_reconciliation_app/internal/utils"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Clock     func() time.Time
	Analytics *utils.PosthogClientWrapper
}

// Option configures the BaseService embedded in every service.
type Option func(*BaseService)

// WithClock replaces the wall clock used for audit timestamps and overdue checks.
func WithClock(clock func() time.Time) Option {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

// WithAnalytics sends domain events to PostHog.
func WithAnalytics(client *utils.PosthogClientWrapper) Option {
	return func(s *BaseService) {
		s.Analytics = client
	}
}

func (s *BaseService) apply(options []Option) {
	for _, option := range options {
		option(s)
	}
}

// Now returns the current time in UTC from the configured clock.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

// Track enqueues an analytics event when analytics are configured.
func (s *BaseService) Track(userID, event string, properties map[string]any) {
	if s.Analytics == nil {
		return
	}
	s.Analytics.Enqueue(userID, event, properties)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
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

// notFound converts a repository ErrNotFound into a NotFound error naming the resource.
func notFound(err error, kind, id string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError(kind, id)
	}
	return err
}
