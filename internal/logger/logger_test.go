package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"mockup-catalog-backend/internal/logger"
)

func TestNewZapLogger(t *testing.T) {
	log, err := logger.NewZapLogger(logger.Config{Level: "warn", Encoding: "json"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestNewZapLogger_BadLevel(t *testing.T) {
	_, err := logger.NewZapLogger(logger.Config{Level: "loud"})
	assert.Error(t, err)
}
