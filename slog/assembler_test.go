package slog_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/nethys"
	"github.com/fwojciec/nethys/mock"
	nslog "github.com/fwojciec/nethys/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAssembler_Assemble(t *testing.T) {
	t.Parallel()

	t.Run("logs record and warning counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Assembler{
			AssembleFn: func(category nethys.Category, id string, _ string) ([]*nethys.Record, error) {
				rec := &nethys.Record{ID: id, Category: category, Name: "Rope"}
				rec.Warnings = []nethys.FieldWarning{{Field: "bulk"}}
				return []*nethys.Record{rec, {ID: id + "-2", Category: category, Name: "Rope (50 feet)"}}, nil
			},
		}

		records, err := nslog.NewLoggingAssembler(inner, logger).Assemble(nethys.CategoryEquipment, "5", "<h1/>")

		require.NoError(t, err)
		assert.Len(t, records, 2)
		output := buf.String()
		assert.Contains(t, output, "assemble")
		assert.Contains(t, output, "category=equipment")
		assert.Contains(t, output, "id=5")
		assert.Contains(t, output, "records=2")
		assert.Contains(t, output, "warnings=1")
	})

	t.Run("logs each field warning at warn level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Assembler{
			AssembleFn: func(category nethys.Category, id string, _ string) ([]*nethys.Record, error) {
				rec := &nethys.Record{ID: id, Category: category, Name: "Leather Armor"}
				rec.Warnings = []nethys.FieldWarning{
					{Key: "armor-3", Field: "price", Raw: "priceless"},
					{Key: "armor-3", Field: "bulk", Raw: "heavy"},
				}
				return []*nethys.Record{rec}, nil
			},
		}

		_, err := nslog.NewLoggingAssembler(inner, logger).Assemble(nethys.CategoryArmor, "3", "<h1/>")

		require.NoError(t, err)
		output := buf.String()
		assert.Equal(t, 2, strings.Count(output, "level=WARN"))
		assert.Contains(t, output, "key=armor-3")
		assert.Contains(t, output, "field=price")
		assert.Contains(t, output, "raw=priceless")
		assert.Contains(t, output, "field=bulk")
		assert.NotContains(t, output, "msg=assemble", "debug entries are below the default level")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Assembler{
			AssembleFn: func(_ nethys.Category, _ string, _ string) ([]*nethys.Record, error) {
				return nil, nethys.Errorf(nethys.EINVALID, "no title")
			},
		}

		_, err := nslog.NewLoggingAssembler(inner, logger).Assemble(nethys.CategorySpell, "1", "")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "records=0")
		assert.Contains(t, buf.String(), "err=")
	})
}
