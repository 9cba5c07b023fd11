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

func TestLoggingPageSource_FetchPage(t *testing.T) {
	t.Parallel()

	info, ok := nethys.LookupCategory(nethys.CategorySpell)
	require.True(t, ok)

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageSource{
			FetchPageFn: func(_ context.Context, _ nethys.CategoryInfo, _ int) (string, error) {
				return "<div>content</div>", nil
			},
		}

		source := nslog.NewLoggingPageSource(inner, logger)
		markup, err := source.FetchPage(context.Background(), info, 42)

		require.NoError(t, err)
		assert.Equal(t, "<div>content</div>", markup)
		output := buf.String()
		assert.Contains(t, output, "fetch page")
		assert.Contains(t, output, "category=spell")
		assert.Contains(t, output, "id=42")
		assert.Contains(t, output, "bytes=18")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageSource{
			FetchPageFn: func(_ context.Context, _ nethys.CategoryInfo, _ int) (string, error) {
				return "", errors.New("network error")
			},
		}

		source := nslog.NewLoggingPageSource(inner, logger)
		_, err := source.FetchPage(context.Background(), info, 1)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"network error\"")
	})
}
