package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigLevels(t *testing.T) {
	require.Equal(t, zapcore.DebugLevel, Config("DEBUG").Level.Level())
	require.Equal(t, zapcore.InfoLevel, Config("").Level.Level())
	require.Equal(t, zapcore.InfoLevel, Config("loud").Level.Level())
	require.Equal(t, "severity", Config("info").EncoderConfig.LevelKey)
}

func TestContextRoundTrip(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("hello")
	require.Equal(t, 1, logs.Len())

	require.NotNil(t, FromContext(context.Background()))
	require.Equal(t, context.Background(), WithLogger(context.Background(), nil))
}
