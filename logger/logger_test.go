package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name      string
		json      bool
		verbosity int
		enabled   zapcore.Level
		disabled  []zapcore.Level
	}{
		{name: "console default", verbosity: 0, enabled: zapcore.WarnLevel, disabled: []zapcore.Level{zapcore.InfoLevel}},
		{name: "console -v", verbosity: 1, enabled: zapcore.InfoLevel, disabled: []zapcore.Level{zapcore.DebugLevel}},
		{name: "json -vv", json: true, verbosity: 2, enabled: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(func() {
				Logger = zap.NewNop().Sugar()
				JSONOutput = false
			})
			require.NoError(t, Initialize(tt.json, tt.verbosity))
			require.NotNil(t, Logger)
			assert.Equal(t, tt.json, JSONOutput)

			core := Logger.Desugar().Core()
			assert.True(t, core.Enabled(tt.enabled))
			for _, level := range tt.disabled {
				assert.False(t, core.Enabled(level))
			}
		})
	}
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{VerbosityTrace, zapcore.DebugLevel},
		{7, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "User", LevelName(0))
	assert.Equal(t, "Debug (-vv)", LevelName(2))
	assert.Equal(t, "Trace (-vvv+)", LevelName(5))
	assert.Equal(t, "Unknown", LevelName(-1))
}

func TestShouldOutput(t *testing.T) {
	tests := []struct {
		category  OutputCategory
		verbosity int
		want      bool
	}{
		{OutputResults, VerbosityUser, true},
		{OutputErrors, VerbosityUser, true},
		{OutputRunSummary, VerbosityUser, false},
		{OutputRunSummary, VerbosityInfo, true},
		{OutputTiming, VerbosityInfo, false},
		{OutputConfig, VerbosityDebug, true},
		{OutputOverloadPlan, VerbosityDebug, false},
		{OutputOverloadPlan, VerbosityTrace, true},
		{OutputCategory(99), VerbosityDebug, false},
	}
	for _, tt := range tests {
		t.Run(CategoryName(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldOutput(tt.verbosity, tt.category))
		})
	}
}

func TestComponentLogger(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })
	require.NoError(t, Initialize(false, 0))
	assert.NotNil(t, ComponentLogger("gen"))
}

func TestCleanup(t *testing.T) {
	assert.NotPanics(t, Cleanup)
}
