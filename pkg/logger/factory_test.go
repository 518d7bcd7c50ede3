package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("text by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("json format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatJSON))
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatJSON),
			logger.WithAttr(slog.String("svc", "test")),
		)
		log.Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("context value survives With", func(t *testing.T) {
		type key struct{}
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatJSON),
			logger.WithContextValue("run_id", key{}),
		).With(logger.Component("cli"))

		ctx := context.WithValue(context.Background(), key{}, "42")
		log.InfoContext(ctx, "context msg")
		entry := decode(t, buf)
		assert.Equal(t, "42", entry["run_id"])
		assert.Equal(t, "cli", entry["component"])
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat(logger.Format("xml")))
		})
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("prod", "formcheck"), logger.WithOutput(buf))
		log.Debug("hidden")
		log.Info("shown")
		entry := decode(t, buf)
		assert.Equal(t, "production", entry["env"])
		assert.Equal(t, "formcheck", entry["service"])
	})

	t.Run("development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("", "formcheck"), logger.WithOutput(buf))
		log.Debug("shown")
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "env=development")
	})
}

func TestParseLevel(t *testing.T) {
	l, err := logger.ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = logger.ParseLevel(" warn ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = logger.ParseLevel("loud")
	assert.Error(t, err)
}

func TestAttrs(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, slog.Attr{}, logger.Errors(nil, nil))
	assert.Equal(t, "error", logger.Error(errors.New("x")).Key)
	assert.Equal(t, "errors", logger.Errors(nil, errors.New("x")).Key)
	assert.Equal(t, slog.String("field", "age"), logger.Field("age"))
	assert.Equal(t, slog.Duration("duration", time.Second), logger.Duration(time.Second))
	assert.Equal(t, slog.Attr{}, logger.RunID(nil))
}
