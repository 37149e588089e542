package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrettyHandler(t *testing.T) {
	color.NoColor = true

	t.Run("filters records below warn by default", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		log := New(&buf, false, false)

		// Act
		log.Info("hidden")
		log.Warn("shown", "count", 3)

		// Assert
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "[WARN]  shown count=3")
	})

	t.Run("verbose enables info", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, false, true)

		log.Info("listing changes", "backend", "cli")

		assert.Contains(t, buf.String(), "[INFO]  listing changes backend=cli")
	})

	t.Run("keeps attrs and groups from With", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, true, false).With("provider", "gemini").WithGroup("git")

		log.Debug("diff ready", "bytes", 42)

		out := buf.String()
		assert.Contains(t, out, "[DEBUG]")
		assert.Contains(t, out, "provider=gemini")
		assert.Contains(t, out, "git.bytes=42")
		assert.Contains(t, out, "logger_test.go")
	})
}

func TestContextHelpers(t *testing.T) {
	color.NoColor = true

	t.Run("FromContext returns the stored logger", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		ctx := WithLogger(context.Background(), New(&buf, false, true))

		// Act
		ctx = With(ctx, "commit_type", "feat")
		Info(ctx, "summarizing")
		Error(ctx, "failed", errors.New("boom"))

		// Assert
		out := buf.String()
		assert.Contains(t, out, "summarizing commit_type=feat")
		assert.Contains(t, out, "error=boom")
	})

	t.Run("FromContext falls back to the default logger", func(t *testing.T) {
		assert.Equal(t, slog.Default(), FromContext(context.Background()))
	})
}
