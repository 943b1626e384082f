package logger

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// Everforest Dark palette
const (
	colorFg      = "\x1b[38;5;223m"
	colorTime    = "\x1b[38;5;107m"
	colorName    = "\x1b[38;5;108m"
	colorID      = "\x1b[38;5;109m"
	colorNumber  = "\x1b[38;5;142m"
	colorKey     = "\x1b[38;5;245m"
	colorWarnFg  = "\x1b[38;5;179m"
	colorWarnBg  = "\x1b[48;5;58m"
	colorErrorFg = "\x1b[38;5;167m"
	colorErrorBg = "\x1b[48;5;52m"
)

var bufferPool = buffer.NewPool()

// minimalEncoder implements a calm, compact console encoder.
// Format: "13:04:35  gen  Generation complete  6 classes  42 overloads  workers=8"
type minimalEncoder struct {
	zapcore.Encoder // Embed a base encoder for field serialization
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{Encoder: enc.Encoder.Clone()}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := bufferPool.Get()

	final.AppendString(colorTime)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: hidden for INFO
	if level := levelColorString(ent.Level); level != "" {
		final.AppendString("  ")
		final.AppendString(level)
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorName)
		final.AppendString(ent.LoggerName)
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(colorFg)
	final.AppendString(ent.Message)
	final.AppendString(colorReset)

	if values := formatFields(fields); values != "" {
		final.AppendString("  ")
		final.AppendString(values)
	}

	final.AppendString("\n")
	return final, nil
}

// levelColorString returns bold + colored + background for WARN/ERROR
func levelColorString(level zapcore.Level) string {
	switch level {
	case zapcore.WarnLevel:
		return colorBold + colorWarnBg + colorWarnFg + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + colorErrorBg + colorErrorFg + "ERROR" + colorReset
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return colorBold + colorErrorBg + colorErrorFg + level.CapitalString() + colorReset
	case zapcore.DebugLevel:
		return colorKey + "DEBUG" + colorReset
	default:
		return ""
	}
}

// formatFields renders every field. Class and function names come first,
// then counts, then the remaining fields as sorted key=value pairs.
func formatFields(fields []zapcore.Field) string {
	if len(fields) == 0 {
		return ""
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}

	var parts []string
	for _, key := range []string{FieldClass, FieldFunction} {
		if v, ok := enc.Fields[key]; ok {
			parts = append(parts, colorID+fmt.Sprint(v)+colorReset)
			delete(enc.Fields, key)
		}
	}
	for _, key := range []string{FieldClasses, FieldOverloads, FieldFiles} {
		if v, ok := enc.Fields[key]; ok {
			parts = append(parts, colorNumber+fmt.Sprint(v)+colorReset+" "+key)
			delete(enc.Fields, key)
		}
	}
	if v, ok := enc.Fields[FieldDurationMS]; ok {
		parts = append(parts, colorNumber+fmt.Sprint(v)+colorReset+"ms")
		delete(enc.Fields, FieldDurationMS)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, colorKey+k+"="+colorReset+fmt.Sprint(enc.Fields[k]))
	}
	return strings.Join(parts, "  ")
}
