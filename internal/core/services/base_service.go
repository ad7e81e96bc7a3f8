package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/SscSPs/personal_os/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock           func() time.Time
	defaultCurrency string
}

// ServiceOption is a functional option shared by every service constructor.
type ServiceOption func(*BaseService)

// WithClock overrides the time source. Tests use it to pin "today".
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = clock
	}
}

// WithDefaultCurrency sets the currency used for assets created without one,
// including the fallback primary asset.
func WithDefaultCurrency(code string) ServiceOption {
	return func(s *BaseService) {
		if code != "" {
			s.defaultCurrency = code
		}
	}
}

func newBaseService(opts ...ServiceOption) BaseService {
	base := BaseService{
		clock:           time.Now,
		defaultCurrency: domain.DefaultCurrency,
	}
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

// Now returns the current instant in UTC.
func (s *BaseService) Now() time.Time {
	return s.clock().UTC()
}

// DefaultCurrency returns the configured fallback currency code.
func (s *BaseService) DefaultCurrency() string {
	return s.defaultCurrency
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
