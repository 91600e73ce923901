package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ReturnsLogger(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		log := New("debug", format)
		require.NotNil(t, log)
		log.Debug("smoke test", Field{Key: FieldCount, Value: 1})
	}
}

func TestNew_BadLevelFallsBack(t *testing.T) {
	log := New("not-a-level", "text")
	require.NotNil(t, log)
	log.Info("still works")
}

func TestMockLogger_CapturesEntries(t *testing.T) {
	m := NewMockLogger()

	m.Info("hello", Field{Key: FieldFile, Value: "a.csv"})
	m.WithError(errors.New("boom")).Error("failed")

	require.Len(t, m.Entries, 2)
	assert.Equal(t, "INFO", m.Entries[0].Level)
	assert.Equal(t, "hello", m.Entries[0].Message)
	assert.EqualError(t, m.Entries[1].Error, "boom")
	assert.True(t, m.HasMessage("failed"))
	assert.False(t, m.HasMessage("never logged"))
}

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	m := NewMockLogger()

	derived := m.WithField(FieldCategory, "Travel")
	derived.Warn("flagged")

	require.Len(t, m.Entries, 1)
	require.NotEmpty(t, m.Entries[0].Fields)
	assert.Equal(t, FieldCategory, m.Entries[0].Fields[0].Key)
}
