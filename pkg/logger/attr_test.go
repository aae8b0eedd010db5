package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns empty attr", func(t *testing.T) {
		t.Parallel()
		attr := logger.Error(nil)
		assert.Empty(t, attr.Key)
	})

	t.Run("non-nil error", func(t *testing.T) {
		t.Parallel()
		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)
	})
}

func TestComponent(t *testing.T) {
	t.Parallel()

	attr := logger.Component("session")
	assert.Equal(t, "component", attr.Key)
	assert.Equal(t, "session", attr.Value.String())
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json format writes structured output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("app", "test")),
		)
		log.Info("hello")

		require.NotEmpty(t, buf.String())
		assert.Contains(t, buf.String(), `"app":"test"`)
		assert.Contains(t, buf.String(), `"msg":"hello"`)
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(
			logger.WithLevel(slog.LevelWarn),
			logger.WithOutput(&buf),
		)
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			logger.New(logger.WithFormat("xml"))
		})
	})
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	log := logger.Discard()
	require.NotNil(t, log)
	log.Error("goes nowhere")
}
