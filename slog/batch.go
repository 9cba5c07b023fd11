package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/nethys"
)

// Ensure LoggingBatchStore implements nethys.BatchStore.
var _ nethys.BatchStore = (*LoggingBatchStore)(nil)

// LoggingBatchStore wraps a BatchStore with logging.
type LoggingBatchStore struct {
	next   nethys.BatchStore
	logger *slog.Logger
}

// NewLoggingBatchStore creates a new LoggingBatchStore.
func NewLoggingBatchStore(next nethys.BatchStore, logger *slog.Logger) *LoggingBatchStore {
	return &LoggingBatchStore{next: next, logger: logger}
}

// SaveBatch delegates to the wrapped store and logs the operation.
func (s *LoggingBatchStore) SaveBatch(ctx context.Context, batch *nethys.Batch) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save batch",
			"address", batch.Address,
			"records", len(batch.Records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveBatch(ctx, batch)
}

// Commit delegates to the wrapped store and logs the operation.
func (s *LoggingBatchStore) Commit(aggs *nethys.Aggregations) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("commit batches",
			"sources", len(aggs.Sources),
			"traits", len(aggs.Traits),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Commit(aggs)
}

// Abort delegates to the wrapped store and logs the operation.
func (s *LoggingBatchStore) Abort() (err error) {
	defer func() {
		s.logger.Info("abort batches", "err", err)
	}()
	return s.next.Abort()
}
