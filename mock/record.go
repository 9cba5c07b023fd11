package mock

import (
	"context"

	"github.com/fwojciec/nethys"
)

var (
	_ nethys.RecordSink    = (*RecordSink)(nil)
	_ nethys.RecordService = (*RecordService)(nil)
	_ nethys.Assembler     = (*Assembler)(nil)
)

// RecordSink is a mock implementation of nethys.RecordSink.
type RecordSink struct {
	SubmitRecordFn func(ctx context.Context, rec *nethys.Record) error
}

func (s *RecordSink) SubmitRecord(ctx context.Context, rec *nethys.Record) error {
	return s.SubmitRecordFn(ctx, rec)
}

// RecordService is a mock implementation of nethys.RecordService.
type RecordService struct {
	SubmitRecordFn    func(ctx context.Context, rec *nethys.Record) error
	FindRecordByKeyFn func(ctx context.Context, key string) (*nethys.Record, error)
	FindRecordsFn     func(ctx context.Context, filter nethys.RecordFilter) ([]*nethys.Record, error)
}

func (s *RecordService) SubmitRecord(ctx context.Context, rec *nethys.Record) error {
	return s.SubmitRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByKey(ctx context.Context, key string) (*nethys.Record, error) {
	return s.FindRecordByKeyFn(ctx, key)
}

func (s *RecordService) FindRecords(ctx context.Context, filter nethys.RecordFilter) ([]*nethys.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

// Assembler is a mock implementation of nethys.Assembler.
type Assembler struct {
	AssembleFn func(category nethys.Category, id string, markup string) ([]*nethys.Record, error)
}

func (a *Assembler) Assemble(category nethys.Category, id string, markup string) ([]*nethys.Record, error) {
	return a.AssembleFn(category, id, markup)
}
