package mock

import (
	"context"

	"github.com/fwojciec/nethys"
)

var (
	_ nethys.BatchStore = (*BatchStore)(nil)
	_ nethys.RunService = (*RunService)(nil)
)

// BatchStore is a mock implementation of nethys.BatchStore.
type BatchStore struct {
	SaveBatchFn func(ctx context.Context, batch *nethys.Batch) error
	CommitFn    func(aggs *nethys.Aggregations) error
	AbortFn     func() error
}

func (s *BatchStore) SaveBatch(ctx context.Context, batch *nethys.Batch) error {
	return s.SaveBatchFn(ctx, batch)
}

func (s *BatchStore) Commit(aggs *nethys.Aggregations) error {
	return s.CommitFn(aggs)
}

func (s *BatchStore) Abort() error {
	return s.AbortFn()
}

// RunService is a mock implementation of nethys.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *nethys.Run) error
	FindRunsFn  func(ctx context.Context, limit int) ([]*nethys.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *nethys.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, limit int) ([]*nethys.Run, error) {
	return s.FindRunsFn(ctx, limit)
}
