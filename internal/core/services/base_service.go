package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/SscSPs/ledger_core/internal/platform/metrics"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// clock is overridden in tests.
	clock func() time.Time
}

// Now returns the current UTC time.
func (s *BaseService) Now() time.Time {
	if s.clock != nil {
		return s.clock().UTC()
	}
	return time.Now().UTC()
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

// LogWarn logs a rejected request. Client errors are not failures of the ledger.
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Warn(msg, args...)
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

// LogFailure logs at warn level for categorized client errors and at error level otherwise.
func (s *BaseService) LogFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	switch metrics.Category(err) {
	case "internal", "consistency":
		s.LogError(ctx, err, msg, keyvals...)
	default:
		s.LogWarn(ctx, err, msg, keyvals...)
	}
}

// ReportConsistencyFault logs a violated ledger invariant at error level and counts it.
func (s *BaseService) ReportConsistencyFault(ctx context.Context, err error, keyvals ...any) {
	var ce *apperrors.ConsistencyError
	check := "unknown"
	if errors.As(err, &ce) {
		check = ce.Check
	}
	metrics.ConsistencyFaults.WithLabelValues(check).Inc()
	s.LogError(ctx, err, "Ledger consistency check failed", append(keyvals, slog.String("check", check))...)
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
