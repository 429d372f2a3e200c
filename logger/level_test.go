package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelNames(t *testing.T) {
	want := []string{"verbose", "info", "debug", "warn", "success", "error"}
	for i, level := range AllLevels() {
		assert.Equal(t, Level(i), level)
		assert.Equal(t, want[i], level.String())
	}
	assert.Equal(t, "SUCCESS", SuccessLevel.Upper())
	assert.Equal(t, "level(9)", Level(9).String())
	assert.False(t, Level(-1).Valid())
}

func TestParseLevel(t *testing.T) {
	for _, level := range AllLevels() {
		got, err := ParseLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, got)

		got, err = ParseLevel(level.Upper())
		require.NoError(t, err)
		assert.Equal(t, level, got)
	}

	got, err := ParseLevel(" warning ")
	require.NoError(t, err)
	assert.Equal(t, WarnLevel, got)

	got, err = ParseLevel("4")
	require.NoError(t, err)
	assert.Equal(t, SuccessLevel, got)

	for _, bad := range []string{"", "6", "-1", "fatal"} {
		_, err := ParseLevel(bad)
		assert.Error(t, err, bad)
	}
}

func TestDefaultColorTable(t *testing.T) {
	assert.Equal(t, Color("\033[90m"), DefaultColor(VerboseLevel))
	assert.Equal(t, Color("\033[94m"), DefaultColor(InfoLevel))
	assert.Equal(t, Color("\033[95m"), DefaultColor(DebugLevel))
	assert.Equal(t, Color("\033[93m"), DefaultColor(WarnLevel))
	assert.Equal(t, Color("\033[92m"), DefaultColor(SuccessLevel))
	assert.Equal(t, Color("\033[91m"), DefaultColor(ErrorLevel))
	assert.Equal(t, Color("\033[0m"), Reset)
	assert.Empty(t, DefaultColor(Level(42)))
}
