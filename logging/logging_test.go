package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLevels(t *testing.T) {
	data := []struct {
		level    string
		expected zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
	}
	for _, d := range data {
		logger, err := New(Options{Level: d.level})
		require.NoError(t, err, d.level)
		assert.True(t, logger.Core().Enabled(d.expected), d.level)
		if d.expected > zapcore.DebugLevel {
			assert.False(t, logger.Core().Enabled(d.expected-1), d.level)
		}
	}
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNewDevelopment(t *testing.T) {
	logger, err := New(Options{Level: "debug", Development: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	root := zap.New(core)

	assert.NotNil(t, From(context.Background()))

	ctx := Context(context.Background(), root)
	assert.Same(t, root, From(ctx))

	sub, ctx := SubFrom(ctx, "scene")
	assert.Same(t, sub, From(ctx))
	sub.Info("hello")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "scene", logs.All()[0].LoggerName)
}
