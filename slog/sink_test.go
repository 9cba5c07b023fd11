package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/nethys"
	"github.com/fwojciec/nethys/mock"
	nslog "github.com/fwojciec/nethys/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSink_SubmitRecord(t *testing.T) {
	t.Parallel()

	t.Run("logs submission at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		var got *nethys.Record
		inner := &mock.RecordSink{
			SubmitRecordFn: func(_ context.Context, rec *nethys.Record) error {
				got = rec
				return nil
			},
		}

		rec := &nethys.Record{ID: "7", Category: nethys.CategoryFeat, Name: "Power Attack"}
		err := nslog.NewLoggingSink(inner, logger).SubmitRecord(context.Background(), rec)

		require.NoError(t, err)
		assert.Same(t, rec, got)
		output := buf.String()
		assert.Contains(t, output, "submit record")
		assert.Contains(t, output, "key=feat-7")
	})

	t.Run("logs nothing at the default level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordSink{
			SubmitRecordFn: func(_ context.Context, _ *nethys.Record) error { return nil },
		}

		rec := &nethys.Record{ID: "9", Category: nethys.CategorySpell, Name: "Blink"}
		rec.Warnings = []nethys.FieldWarning{{Key: "spell-9", Field: "duration", Raw: "until you blink"}}
		err := nslog.NewLoggingSink(inner, logger).SubmitRecord(context.Background(), rec)

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("returns sink error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.RecordSink{
			SubmitRecordFn: func(_ context.Context, _ *nethys.Record) error { return errors.New("disk full") },
		}

		err := nslog.NewLoggingSink(inner, logger).SubmitRecord(context.Background(), &nethys.Record{ID: "1", Category: nethys.CategorySpell})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}
