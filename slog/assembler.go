package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/nethys"
)

// Ensure LoggingAssembler implements nethys.Assembler.
var _ nethys.Assembler = (*LoggingAssembler)(nil)

// LoggingAssembler wraps an Assembler with debug logging. Field warnings
// carried by assembled records are logged at warn level.
type LoggingAssembler struct {
	next   nethys.Assembler
	logger *slog.Logger
}

// NewLoggingAssembler creates a new LoggingAssembler.
func NewLoggingAssembler(next nethys.Assembler, logger *slog.Logger) *LoggingAssembler {
	return &LoggingAssembler{next: next, logger: logger}
}

// Assemble delegates to the wrapped assembler and logs the operation.
func (a *LoggingAssembler) Assemble(category nethys.Category, id string, markup string) (records []*nethys.Record, err error) {
	defer func(begin time.Time) {
		var warnings int
		for _, rec := range records {
			for _, w := range rec.Warnings {
				a.logger.Warn("field warning",
					"key", w.Key,
					"field", w.Field,
					"raw", w.Raw,
				)
			}
			warnings += len(rec.Warnings)
		}
		a.logger.Debug("assemble",
			"category", string(category),
			"id", id,
			"records", len(records),
			"warnings", warnings,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Assemble(category, id, markup)
}
