package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/nethys"
)

// Ensure LoggingSink implements nethys.RecordSink.
var _ nethys.RecordSink = (*LoggingSink)(nil)

// LoggingSink wraps a RecordSink with debug logging.
type LoggingSink struct {
	next   nethys.RecordSink
	logger *slog.Logger
}

// NewLoggingSink creates a new LoggingSink.
func NewLoggingSink(next nethys.RecordSink, logger *slog.Logger) *LoggingSink {
	return &LoggingSink{next: next, logger: logger}
}

// SubmitRecord delegates to the wrapped sink and logs the operation.
func (s *LoggingSink) SubmitRecord(ctx context.Context, rec *nethys.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("submit record",
			"key", rec.Key(),
			"warnings", len(rec.Warnings),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SubmitRecord(ctx, rec)
}
