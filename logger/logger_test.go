package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"bptree"
)

func TestZapAdapter(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	var l bptree.Logger = NewZap(zap.New(core))

	l.Error("lookup failed", "key", 7)
	l.Warn("slow scan", "leaves", 3)
	l.Info("loaded")

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "lookup failed", entries[0].Message)
	assert.Equal(t, map[string]any{"key": int64(7)}, entries[0].ContextMap())

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "slow scan", entries[1].Message)

	assert.Equal(t, zapcore.InfoLevel, entries[2].Level)
	assert.Equal(t, "loaded", entries[2].Message)
}

func TestLogrusAdapter(t *testing.T) {
	t.Parallel()

	base, hook := test.NewNullLogger()
	var l bptree.Logger = NewLogrus(base)

	l.Error("lookup failed", "key", 7)
	l.Warn("slow scan", "leaves", 3)
	l.Info("loaded")

	require.Len(t, hook.Entries, 3)

	assert.Equal(t, logrus.ErrorLevel, hook.Entries[0].Level)
	assert.Equal(t, "lookup failed", hook.Entries[0].Message)
	assert.Equal(t, logrus.Fields{"key": 7}, hook.Entries[0].Data)

	assert.Equal(t, logrus.WarnLevel, hook.Entries[1].Level)
	assert.Equal(t, logrus.InfoLevel, hook.Entries[2].Level)
}

func TestLogrusFieldConversion(t *testing.T) {
	t.Parallel()

	// Non-string keys and a trailing unpaired value are dropped rather
	// than panicking.
	fields := argsToFields([]any{"a", 1, 2, "ignored", "b", "x", "dangling"})
	assert.Equal(t, logrus.Fields{"a": 1, "b": "x"}, fields)
}
