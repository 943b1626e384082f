package logger

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stripANSI removes ANSI color codes from a string for testing
func stripANSI(str string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(str, "")
}

func encode(t *testing.T, ent zapcore.Entry, fields ...zapcore.Field) string {
	t.Helper()
	buf, err := newMinimalEncoder().EncodeEntry(ent, fields)
	require.NoError(t, err)
	defer buf.Free()
	return stripANSI(buf.String())
}

func TestMinimalEncoderLayout(t *testing.T) {
	ent := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2026, 10, 14, 13, 4, 35, 0, time.UTC),
		LoggerName: "gen",
		Message:    "Generation complete",
	}
	got := encode(t, ent,
		zap.Int(FieldClasses, 6),
		zap.Int(FieldOverloads, 42),
		zap.Int(FieldWorkers, 8),
		zap.Int64(FieldDurationMS, 12),
	)
	assert.Equal(t, "13:04:35  gen  Generation complete  6 classes  42 overloads  12ms  workers=8\n", got)
}

// The encoder must never drop a field, whatever its type.
func TestMinimalEncoderKeepsEveryField(t *testing.T) {
	ent := zapcore.Entry{Level: zapcore.WarnLevel, Time: time.Now(), Message: "Resolved overloads"}
	got := encode(t, ent,
		zap.String(FieldClass, "AL10"),
		zap.String(FieldFunction, "alGenSources"),
		zap.Bool("hidden", true),
		zap.Float64("ratio", 0.5),
		zap.Strings("names", []string{"a", "b"}),
		zap.Error(errors.New("boom")),
		zap.Error(nil),
	)

	assert.Contains(t, got, "  WARN  Resolved overloads  AL10  alGenSources  ")
	for _, want := range []string{"error=boom", "hidden=true", "names=[a b]", "ratio=0.5"} {
		assert.Contains(t, got, want)
	}
}

func TestLevelColorString(t *testing.T) {
	assert.Empty(t, levelColorString(zapcore.InfoLevel))
	assert.Equal(t, "ERROR", stripANSI(levelColorString(zapcore.ErrorLevel)))
	assert.Equal(t, "DEBUG", stripANSI(levelColorString(zapcore.DebugLevel)))
	assert.Equal(t, "FATAL", stripANSI(levelColorString(zapcore.FatalLevel)))
}
