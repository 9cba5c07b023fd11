// Package slog provides log/slog decorators for nethys services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/nethys"
)

// Ensure LoggingPageSource implements nethys.PageSource.
var _ nethys.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with logging.
type LoggingPageSource struct {
	next   nethys.PageSource
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource.
func NewLoggingPageSource(next nethys.PageSource, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, logger: logger}
}

// FetchPage delegates to the wrapped source and logs the operation.
func (s *LoggingPageSource) FetchPage(ctx context.Context, info nethys.CategoryInfo, id int) (markup string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("fetch page",
			"category", string(info.Category),
			"id", id,
			"bytes", len(markup),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchPage(ctx, info, id)
}
