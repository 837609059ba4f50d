package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visionfocus/focushours/internal/platform/logger"
)

func TestSetup(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	tests := []struct {
		name      string
		level     string
		debugSeen bool
		warned    bool
	}{
		{name: "debug", level: "debug", debugSeen: true},
		{name: "upper case info", level: "INFO"},
		{name: "empty defaults to info", level: ""},
		{name: "invalid falls back", level: "verbose", warned: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.Setup(logger.Config{Level: tt.level, Output: &buf})
			require.NotNil(t, log)
			assert.Same(t, log, slog.Default())

			log.Debug("debug line")
			log.Info("info line")

			out := buf.String()
			assert.Equal(t, tt.debugSeen, strings.Contains(out, "debug line"))
			assert.Contains(t, out, "info line")
			assert.Equal(t, tt.warned, strings.Contains(out, "invalid log level configured"))
		})
	}
}

func TestSetupFormats(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	var buf bytes.Buffer
	logger.Setup(logger.Config{Format: "json", Output: &buf}).Info("hello", "k", "v")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "v", entry["k"])

	buf.Reset()
	logger.Setup(logger.Config{Format: "text", Output: &buf}).Info("hello", "k", "v")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "k=v")
}

func TestContextHelpers(t *testing.T) {
	t.Parallel()

	log, buf := logger.GetTestLogger(t)

	ctx := logger.WithLogger(context.Background(), log)
	ctx = logger.WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", logger.RequestIDFromContext(ctx))

	logger.FromContext(ctx).Info("tagged")

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-1", entries[0]["request_id"])
	logger.AssertLogContains(t, buf, "tagged")

	fallback := logger.Discard()
	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	lvl, err := logger.ParseLevel("Warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = logger.ParseLevel("loud")
	assert.Error(t, err)
}
