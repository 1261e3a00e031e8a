package logging

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerCapturesEntries(t *testing.T) {
	logger := NewMockLogger()

	logger.Info("started", Field{Key: FieldFile, Value: "statement.xlsx"})
	logger.Warn("odd row")

	entries := logger.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "started", entries[0].Message)
	assert.Equal(t, FieldFile, entries[0].Fields[0].Key)
	assert.True(t, logger.HasMessage("odd row"))
	assert.False(t, logger.HasMessage("never logged"))
}

func TestMockLoggerWithDerivedLoggers(t *testing.T) {
	root := NewMockLogger()

	child := root.WithField("user", "anand")
	child.Debug("child message")

	errLogger := root.WithError(fmt.Errorf("boom"))
	errLogger.Error("failed")

	// Entries logged through derived loggers land in the root.
	entries := root.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "child message", entries[0].Message)
	assert.Equal(t, "user", entries[0].Fields[0].Key)
	assert.EqualError(t, entries[1].Error, "boom")
}

func TestNewLogrusAdapter(t *testing.T) {
	// Invalid levels and formats must not panic; the adapter degrades
	// to info/text.
	logger := NewLogrusAdapter("nonsense", "nonsense")
	require.NotNil(t, logger)
	logger.Info("smoke")

	jsonLogger := NewLogrusAdapter("debug", "json")
	require.NotNil(t, jsonLogger)
	jsonLogger.WithField("k", "v").Debug("smoke")
}
